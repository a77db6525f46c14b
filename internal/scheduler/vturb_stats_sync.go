package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/usecases/extracting"
)

// VturbSyncConfig representa a configuração do agendador de estatísticas da VTurb
type VturbSyncConfig struct {
	TodayCronSchedule   string
	HistoryCronSchedule string
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// VturbSyncService gerencia o agendamento das extrações da VTurb, com o mesmo
// par snapshot/histórico das campanhas.
type VturbSyncService struct {
	scheduler           *gocron.Scheduler
	config              VturbSyncConfig
	appConfig           *config.Config
	extractor           *extracting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncReport      *extracting.RunReport
}

func NewVturbSyncService(
	extractor *extracting.Service,
	appConfig *config.Config,
) *VturbSyncService {
	syncConfig := VturbSyncConfig{
		TodayCronSchedule:   appConfig.VturbSync.TodayCronSchedule,
		HistoryCronSchedule: appConfig.VturbSync.HistoryCronSchedule,
		MaxConcurrentJobs:   appConfig.VturbSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.VturbSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"today_cron":          syncConfig.TodayCronSchedule,
		"history_cron":        syncConfig.HistoryCronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador da VTurb carregada")

	return &VturbSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		extractor:   extractor,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *VturbSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da VTurb desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"today_cron":   s.config.TodayCronSchedule,
		"history_cron": s.config.HistoryCronSchedule,
	}).Info("Iniciando agendador de sincronização da VTurb")

	_, err := s.scheduler.Cron(s.config.TodayCronSchedule).Do(func() {
		s.runSync(ctx, "today", nil)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot da VTurb: %w", err)
	}

	_, err = s.scheduler.Cron(s.config.HistoryCronSchedule).Do(func() {
		s.runSync(ctx, "history", nil)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar histórico da VTurb: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da VTurb")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *VturbSyncService) runSync(ctx context.Context, mode string, dateOverride *time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da VTurb já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	date, policy := s.resolveRun(mode, dateOverride)

	logrus.WithFields(logrus.Fields{
		"mode":   mode,
		"date":   date.Format(time.DateOnly),
		"policy": policy,
	}).Info("Iniciando sincronização da VTurb")

	report, err := s.extractor.RunPlayerStats(ctx, date, policy)
	if report != nil {
		s.lastSyncReport = report
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"mode":  mode,
			"date":  date.Format(time.DateOnly),
			"error": err.Error(),
		}).Error("Erro na sincronização da VTurb")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"mode":     mode,
		"duration": duration.String(),
		"written":  report.Written,
	}).Info("Sincronização da VTurb concluída")

	s.lastSyncCompletedAt = time.Now()
}

func (s *VturbSyncService) resolveRun(mode string, dateOverride *time.Time) (time.Time, extracting.WritePolicy) {
	policy := extracting.WritePolicySnapshot
	date := time.Now()
	if mode == "history" {
		policy = extracting.WritePolicyHistory
		date = date.AddDate(0, 0, -1)
	}
	if dateOverride != nil {
		date = *dateOverride
	}
	return date, policy
}

// TriggerManualSync inicia manualmente uma sincronização da VTurb. Uma data
// opcional permite reprocessar um dia específico.
func (s *VturbSyncService) TriggerManualSync(mode string, date *time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da VTurb já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("mode", mode).Info("Iniciando sincronização manual da VTurb")
	go s.runSync(context.Background(), mode, date)
}

// GetStatus retorna o status atual do agendador
func (s *VturbSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_today_cron":        s.config.TodayCronSchedule,
		"sync_history_cron":      s.config.HistoryCronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           running,
		"players":                len(s.appConfig.Vturb.PlayerIDs),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
