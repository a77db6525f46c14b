package vturb

import (
	"context"
	"time"

	vturbdomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/domain"
	"github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/vturbclient"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
)

// VturbIntegrator busca estatísticas brutas de player e as normaliza para o
// registro canônico.
type VturbIntegrator interface {
	FetchPlayerStats(ctx context.Context, playerID string, date time.Time) (*vturbdomain.PlayerStats, error)
	Normalize(raw *vturbdomain.PlayerStats, playerID string, statsDate time.Time) domain.PlayerStats
}

type Service struct {
	cfg    *config.Config
	client vturbclient.Client
}

func New(cfg *config.Config, client vturbclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) FetchPlayerStats(ctx context.Context, playerID string, date time.Time) (*vturbdomain.PlayerStats, error) {
	return s.client.GetPlayerStats(ctx, playerID, date)
}

// Normalize converte o payload bruto no registro canônico. Contadores e
// taxas ausentes já chegam zerados da decodificação.
func (s *Service) Normalize(raw *vturbdomain.PlayerStats, playerID string, statsDate time.Time) domain.PlayerStats {
	day := statsDate.Format(time.DateOnly)

	return domain.PlayerStats{
		PlayerID:            playerID,
		StatsDate:           statsDate,
		ExtractionTimestamp: time.Now(),
		StartDatetime:       day + " 00:00:00",
		EndDatetime:         day + " 23:59:59",

		TotalViews:              raw.Views.TotalEvents,
		TotalUniqueDeviceViews:  raw.Views.TotalUniqDeviceEvents,
		TotalUniqueSessionViews: raw.Views.TotalUniqSessionEvents,

		TotalPlays:              raw.Plays.TotalEvents,
		TotalUniqueDevicePlays:  raw.Plays.TotalUniqDeviceEvents,
		TotalUniqueSessionPlays: raw.Plays.TotalUniqSessionEvents,

		TotalFinishes:              raw.Finishes.TotalEvents,
		TotalUniqueDeviceFinishes:  raw.Finishes.TotalUniqDeviceEvents,
		TotalUniqueSessionFinishes: raw.Finishes.TotalUniqSessionEvents,

		TotalClicks:              raw.Clicks.TotalEvents,
		TotalUniqueDeviceClicks:  raw.Clicks.TotalUniqDeviceEvents,
		TotalUniqueSessionClicks: raw.Clicks.TotalUniqSessionEvents,

		TotalConversions:              raw.Conversions.TotalEvents,
		TotalUniqueDeviceConversions:  raw.Conversions.TotalUniqDeviceEvents,
		TotalUniqueSessionConversions: raw.Conversions.TotalUniqSessionEvents,

		TotalAmountBRL: raw.Conversions.TotalAmountBrl,
		TotalAmountUSD: raw.Conversions.TotalAmountUsd,
		TotalAmountEUR: raw.Conversions.TotalAmountEur,

		OverallPlayRate:       raw.PlayRate.OverallPlayRate,
		OverallConversionRate: raw.ConversionRate.OverallConversionRate,

		AverageWatchedTime:     raw.Engagement.AverageWatchedTime,
		EngagementRate:         raw.Engagement.EngagementRate,
		PitchTimeRetentionRate: raw.Engagement.PitchTimeRetentionRate,
	}
}
