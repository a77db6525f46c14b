package vturb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vturbdomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/vturb/domain"
	"github.com/grupogritt/metrics-sync/internal/config"
)

func TestNormalize(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	raw := &vturbdomain.PlayerStats{
		Views:    vturbdomain.EventStats{TotalEvents: 1000, TotalUniqDeviceEvents: 800, TotalUniqSessionEvents: 900},
		Plays:    vturbdomain.EventStats{TotalEvents: 600, TotalUniqDeviceEvents: 500, TotalUniqSessionEvents: 550},
		Finishes: vturbdomain.EventStats{TotalEvents: 120, TotalUniqDeviceEvents: 100, TotalUniqSessionEvents: 110},
		Clicks:   vturbdomain.EventStats{TotalEvents: 80, TotalUniqDeviceEvents: 70, TotalUniqSessionEvents: 75},
		Conversions: vturbdomain.EventStats{
			TotalEvents:            12,
			TotalUniqDeviceEvents:  11,
			TotalUniqSessionEvents: 11,
			TotalAmountBrl:         1490.50,
			TotalAmountUsd:         290.10,
			TotalAmountEur:         0,
		},
		PlayRate:       vturbdomain.PlayRate{OverallPlayRate: 0.6},
		ConversionRate: vturbdomain.ConversionRate{OverallConversionRate: 0.02},
		Engagement: vturbdomain.EngagementStats{
			AverageWatchedTime:     184.2,
			EngagementRate:         0.44,
			PitchTimeRetentionRate: 0.31,
		},
	}

	before := time.Now()
	stats := service.Normalize(raw, "player-abc", date)
	after := time.Now()

	assert.Equal(t, "player-abc", stats.PlayerID)
	assert.Equal(t, date, stats.StatsDate)

	// A janela de consulta é o dia civil local, ponta a ponta
	assert.Equal(t, "2025-03-15 00:00:00", stats.StartDatetime)
	assert.Equal(t, "2025-03-15 23:59:59", stats.EndDatetime)

	assert.Equal(t, int64(1000), stats.TotalViews)
	assert.Equal(t, int64(800), stats.TotalUniqueDeviceViews)
	assert.Equal(t, int64(900), stats.TotalUniqueSessionViews)

	assert.Equal(t, int64(600), stats.TotalPlays)
	assert.Equal(t, int64(120), stats.TotalFinishes)
	assert.Equal(t, int64(80), stats.TotalClicks)
	assert.Equal(t, int64(12), stats.TotalConversions)

	assert.Equal(t, 1490.50, stats.TotalAmountBRL)
	assert.Equal(t, 290.10, stats.TotalAmountUSD)
	assert.Equal(t, 0.0, stats.TotalAmountEUR)

	assert.Equal(t, 0.6, stats.OverallPlayRate)
	assert.Equal(t, 0.02, stats.OverallConversionRate)
	assert.Equal(t, 184.2, stats.AverageWatchedTime)
	assert.Equal(t, 0.44, stats.EngagementRate)
	assert.Equal(t, 0.31, stats.PitchTimeRetentionRate)

	assert.False(t, stats.ExtractionTimestamp.Before(before))
	assert.False(t, stats.ExtractionTimestamp.After(after))
}

func TestNormalize_PayloadVazio(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	stats := service.Normalize(&vturbdomain.PlayerStats{}, "player-abc", date)

	// Blocos ausentes na resposta já chegam zerados da decodificação
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalConversions)
	assert.Equal(t, 0.0, stats.TotalAmountBRL)
	assert.Equal(t, 0.0, stats.OverallPlayRate)
}
