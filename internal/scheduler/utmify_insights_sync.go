package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
	"github.com/grupogritt/metrics-sync/internal/usecases/extracting"
)

// UtmifySyncConfig representa a configuração do agendador de métricas da Utmify
type UtmifySyncConfig struct {
	TodayCronSchedule   string
	HistoryCronSchedule string
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// UtmifySyncService gerencia o agendamento das extrações da Utmify: o snapshot
// intradiário (campanhas e criativos de hoje) e a consolidação no histórico
// (dados de ontem, após o fechamento do dia de negócio).
type UtmifySyncService struct {
	scheduler           *gocron.Scheduler
	config              UtmifySyncConfig
	appConfig           *config.Config
	extractor           *extracting.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncReports     []*extracting.RunReport
}

func NewUtmifySyncService(
	extractor *extracting.Service,
	appConfig *config.Config,
) *UtmifySyncService {
	syncConfig := UtmifySyncConfig{
		TodayCronSchedule:   appConfig.UtmifySync.TodayCronSchedule,
		HistoryCronSchedule: appConfig.UtmifySync.HistoryCronSchedule,
		MaxConcurrentJobs:   appConfig.UtmifySync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.UtmifySync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"today_cron":          syncConfig.TodayCronSchedule,
		"history_cron":        syncConfig.HistoryCronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador da Utmify carregada")

	return &UtmifySyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		extractor:   extractor,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *UtmifySyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização da Utmify desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"today_cron":   s.config.TodayCronSchedule,
		"history_cron": s.config.HistoryCronSchedule,
	}).Info("Iniciando agendador de sincronização da Utmify")

	_, err := s.scheduler.Cron(s.config.TodayCronSchedule).Do(func() {
		s.runSync(ctx, "today", nil)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot da Utmify: %w", err)
	}

	_, err = s.scheduler.Cron(s.config.HistoryCronSchedule).Do(func() {
		s.runSync(ctx, "history", nil)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar histórico da Utmify: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização da Utmify")
		s.scheduler.Stop()
	}()

	return nil
}

// runSync executa uma rodada completa da Utmify: campanhas e criativos, nos
// dois níveis, sob a política correspondente ao modo.
func (s *UtmifySyncService) runSync(ctx context.Context, mode string, dateOverride *time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da Utmify já em andamento, ignorando")
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
	}).Info("Iniciando sincronização da Utmify")

	reports := make([]*extracting.RunReport, 0, 2)
	for _, level := range []domain.Level{domain.LevelCampaign, domain.LevelAd} {
		report, err := s.extractor.RunAdObjects(ctx, level, date, policy)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"mode":  mode,
				"level": level,
				"date":  date.Format(time.DateOnly),
				"error": err.Error(),
			}).Error("Erro na sincronização da Utmify para o nível")
			// Os níveis são independentes: uma falha em campanhas não
			// impede a rodada de criativos
			continue
		}
	}
	s.lastSyncReports = reports

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"mode":     mode,
		"duration": duration.String(),
		"runs":     len(reports),
	}).Info("Sincronização da Utmify concluída")

	s.lastSyncCompletedAt = time.Now()
}

// resolveRun traduz o modo em data de referência e política de gravação:
// o snapshot olha para hoje, o histórico consolida ontem. Uma data explícita
// substitui a referência padrão e serve para reprocessar dias antigos.
func (s *UtmifySyncService) resolveRun(mode string, dateOverride *time.Time) (time.Time, extracting.WritePolicy) {
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

// TriggerManualSync inicia manualmente uma sincronização da Utmify. Uma data
// opcional permite reprocessar um dia específico.
func (s *UtmifySyncService) TriggerManualSync(mode string, date *time.Time) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização da Utmify já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("mode", mode).Info("Iniciando sincronização manual da Utmify")
	go s.runSync(context.Background(), mode, date)
}

// GetStatus retorna o status atual do agendador
func (s *UtmifySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_today_cron":        s.config.TodayCronSchedule,
		"sync_history_cron":      s.config.HistoryCronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           running,
		"dashboards":             len(s.appConfig.Utmify.DashboardIDs),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
