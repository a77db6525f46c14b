package extracting

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify"
	utmifydomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/domain"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb"
	"github.com/grupogritt/metrics-sync/infrastructure/repository"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
)

// WritePolicy escolhe o destino e a semântica da gravação.
type WritePolicy string

const (
	// WritePolicySnapshot limpa a tabela de "hoje" e insere o lote inteiro.
	WritePolicySnapshot WritePolicy = "snapshot"
	// WritePolicyHistory insere no histórico com upsert pela chave natural.
	WritePolicyHistory WritePolicy = "history"
)

const (
	runIDLength     = 8
	runIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// RunReport resume uma execução do pipeline: contagens de cada estágio e as
// falhas por conta, que são aviso e não motivo de falha do lote.
type RunReport struct {
	RunID         string
	Provider      string
	Level         domain.Level
	ReportDate    time.Time
	Policy        WritePolicy
	Fetched       int
	Deduped       int
	Written       int64
	AccountErrors map[string]error
}

// Service é o pipeline parametrizado de extração: busca em N contas,
// desduplica, normaliza e grava sob a política pedida. As variantes
// hoje/ontem/data arbitrária dos provedores diferem apenas nos parâmetros.
type Service struct {
	cfg          *config.Config
	utmify       utmify.UtmifyIntegrator
	vturb        vturb.VturbIntegrator
	campaignRepo repository.AdObjectInsightRepository
	adRepo       repository.AdObjectInsightRepository
	playerRepo   repository.PlayerStatsRepository
}

func NewService(
	cfg *config.Config,
	utmifyService utmify.UtmifyIntegrator,
	vturbService vturb.VturbIntegrator,
	campaignRepo repository.AdObjectInsightRepository,
	adRepo repository.AdObjectInsightRepository,
	playerRepo repository.PlayerStatsRepository,
) *Service {
	return &Service{
		cfg:          cfg,
		utmify:       utmifyService,
		vturb:        vturbService,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		playerRepo:   playerRepo,
	}
}

// RunAdObjects executa a extração Utmify de um nível (campanha ou criativo)
// para uma data: fan-out pelos dashboards configurados, dedup por
// adId/id, normalização e gravação sob a política pedida.
func (s *Service) RunAdObjects(ctx context.Context, level domain.Level, date time.Time, policy WritePolicy) (*RunReport, error) {
	report := s.newReport("utmify", level, date, policy)

	logrus.WithFields(logrus.Fields{
		"run_id":     report.RunID,
		"level":      level,
		"date":       date.Format(time.DateOnly),
		"policy":     policy,
		"dashboards": len(s.cfg.Utmify.DashboardIDs),
	}).Info("Iniciando extração de objetos de anúncio")

	records, accountErrors, err := FetchAll(ctx, s.cfg.Utmify.DashboardIDs, s.cfg.UtmifySync.MaxConcurrentJobs,
		func(ctx context.Context, dashboardID string) ([]utmifydomain.AdObject, error) {
			return s.utmify.FetchAdObjects(ctx, dashboardID, level, date)
		},
	)
	report.AccountErrors = accountErrors
	if err != nil {
		return report, err
	}
	report.Fetched = len(records)

	unique := ReconcileBy(records, func(record utmifydomain.AdObject) string {
		return record.EntityID()
	})
	report.Deduped = len(unique)

	insights := make([]domain.AdObjectInsight, 0, len(unique))
	for _, record := range unique {
		insights = append(insights, s.utmify.Normalize(record, level, date))
	}

	repo := s.adObjectRepoForLevel(level)

	written, err := s.writeAdObjects(ctx, repo, insights, policy)
	if err != nil {
		return report, err
	}
	report.Written = written

	s.logCompletion(report)
	return report, nil
}

// RunPlayerStats executa a extração VTurb para uma data: fan-out pelos
// players configurados e gravação sob a política pedida.
func (s *Service) RunPlayerStats(ctx context.Context, date time.Time, policy WritePolicy) (*RunReport, error) {
	report := s.newReport("vturb", "", date, policy)

	logrus.WithFields(logrus.Fields{
		"run_id":  report.RunID,
		"date":    date.Format(time.DateOnly),
		"policy":  policy,
		"players": len(s.cfg.Vturb.PlayerIDs),
	}).Info("Iniciando extração de estatísticas de players")

	records, accountErrors, err := FetchAll(ctx, s.cfg.Vturb.PlayerIDs, s.cfg.VturbSync.MaxConcurrentJobs,
		func(ctx context.Context, playerID string) ([]domain.PlayerStats, error) {
			raw, err := s.vturb.FetchPlayerStats(ctx, playerID, date)
			if err != nil {
				return nil, err
			}
			return []domain.PlayerStats{s.vturb.Normalize(raw, playerID, date)}, nil
		},
	)
	report.AccountErrors = accountErrors
	if err != nil {
		return report, err
	}
	report.Fetched = len(records)

	unique := ReconcileBy(records, func(stats domain.PlayerStats) string {
		return stats.PlayerID
	})
	report.Deduped = len(unique)

	written, err := s.writePlayerStats(ctx, unique, policy)
	if err != nil {
		return report, err
	}
	report.Written = written

	s.logCompletion(report)
	return report, nil
}

func (s *Service) writeAdObjects(ctx context.Context, repo repository.AdObjectInsightRepository, insights []domain.AdObjectInsight, policy WritePolicy) (int64, error) {
	switch policy {
	case WritePolicySnapshot:
		if err := repo.ReplaceToday(ctx, insights); err != nil {
			return 0, &StorageError{Err: err}
		}
		return int64(len(insights)), nil

	case WritePolicyHistory:
		written, err := repo.UpsertHistory(ctx, insights)
		if err != nil {
			return 0, &StorageError{Err: err}
		}
		return written, nil

	default:
		return 0, fmt.Errorf("política de gravação desconhecida: %q", policy)
	}
}

func (s *Service) writePlayerStats(ctx context.Context, stats []domain.PlayerStats, policy WritePolicy) (int64, error) {
	switch policy {
	case WritePolicySnapshot:
		if err := s.playerRepo.ReplaceToday(ctx, stats); err != nil {
			return 0, &StorageError{Err: err}
		}
		return int64(len(stats)), nil

	case WritePolicyHistory:
		written, err := s.playerRepo.UpsertHistory(ctx, stats)
		if err != nil {
			return 0, &StorageError{Err: err}
		}
		return written, nil

	default:
		return 0, fmt.Errorf("política de gravação desconhecida: %q", policy)
	}
}

func (s *Service) adObjectRepoForLevel(level domain.Level) repository.AdObjectInsightRepository {
	if level == domain.LevelAd {
		return s.adRepo
	}
	return s.campaignRepo
}

func (s *Service) newReport(provider string, level domain.Level, date time.Time, policy WritePolicy) *RunReport {
	runID, _ := gonanoid.Generate(runIDCharacters, runIDLength)

	return &RunReport{
		RunID:      runID,
		Provider:   provider,
		Level:      level,
		ReportDate: date,
		Policy:     policy,
	}
}

func (s *Service) logCompletion(report *RunReport) {
	logger := logrus.WithFields(logrus.Fields{
		"run_id":         report.RunID,
		"provider":       report.Provider,
		"date":           report.ReportDate.Format(time.DateOnly),
		"policy":         report.Policy,
		"fetched":        report.Fetched,
		"deduped":        report.Deduped,
		"written":        report.Written,
		"account_errors": len(report.AccountErrors),
	})

	if report.Deduped == 0 {
		// Zero registros é um estado válido ("sem dados"), não um erro
		logger.Warn("Extração concluída sem registros")
		return
	}

	logger.Info("Extração concluída")
}
