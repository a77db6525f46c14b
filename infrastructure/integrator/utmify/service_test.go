package utmify

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	utmifydomain "github.com/grupogritt/metrics-sync/infrastructure/integrator/utmify/domain"
	"github.com/grupogritt/metrics-sync/internal/config"
	"github.com/grupogritt/metrics-sync/internal/domain"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}

func TestNormalize_ConversaoMonetaria(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	raw := utmifydomain.AdObject{
		ID:      "camp-1",
		Name:    "Campanha de teste",
		Level:   "campaign",
		Spend:   int64Ptr(12345),
		Revenue: int64Ptr(100),
		Profit:  nil,
		Fees:    int64Ptr(0),
		ROAS:    2.5,
	}

	insight := service.Normalize(raw, domain.LevelCampaign, date)

	assert.Equal(t, "camp-1", insight.EntityID)
	assert.Equal(t, date, insight.ReportDate)
	assert.Equal(t, domain.LevelCampaign, insight.Level)

	// 12345 centavos = 123.45 reais
	assert.True(t, insight.Spend.Valid)
	assert.True(t, decimal.RequireFromString("123.45").Equal(insight.Spend.Decimal))

	assert.True(t, insight.Revenue.Valid)
	assert.True(t, decimal.NewFromInt(1).Equal(insight.Revenue.Decimal))

	// Ausente e zero viram NULL, nunca 0.00
	assert.False(t, insight.Profit.Valid)
	assert.False(t, insight.Fees.Valid)

	assert.Equal(t, 2.5, insight.ROAS)
}

func TestNormalize_ChaveDeEntidade(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		raw      utmifydomain.AdObject
		expected string
	}{
		{
			name:     "adId presente vence o id",
			raw:      utmifydomain.AdObject{AdID: stringPtr("ad-123"), ID: "row-9"},
			expected: "ad-123",
		},
		{
			name:     "adId vazio cai para o id",
			raw:      utmifydomain.AdObject{AdID: stringPtr(""), ID: "row-9"},
			expected: "row-9",
		},
		{
			name:     "adId ausente cai para o id",
			raw:      utmifydomain.AdObject{ID: "row-9"},
			expected: "row-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			insight := service.Normalize(tt.raw, domain.LevelAd, date)
			assert.Equal(t, tt.expected, insight.EntityID)
		})
	}
}

func TestNormalize_CreatedTimePorNivel(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Campanha usa offset compacto", func(t *testing.T) {
		raw := utmifydomain.AdObject{ID: "camp-1", CreatedTime: "2024-06-01T10:00:00-0300"}

		insight := service.Normalize(raw, domain.LevelCampaign, date)

		assert.NotNil(t, insight.CreatedTime)
		expected := time.Date(2024, 6, 1, 10, 0, 0, 0, time.FixedZone("", -3*60*60))
		assert.True(t, expected.Equal(*insight.CreatedTime))
	})

	t.Run("Criativo usa sufixo Z", func(t *testing.T) {
		raw := utmifydomain.AdObject{ID: "ad-1", CreatedTime: "2024-06-01T13:00:00.000Z"}

		insight := service.Normalize(raw, domain.LevelAd, date)

		assert.NotNil(t, insight.CreatedTime)
		expected := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
		assert.True(t, expected.Equal(*insight.CreatedTime))
	})

	t.Run("Valor não interpretável vira nil sem falhar", func(t *testing.T) {
		raw := utmifydomain.AdObject{ID: "ad-1", CreatedTime: "garbage"}

		insight := service.Normalize(raw, domain.LevelAd, date)

		assert.Nil(t, insight.CreatedTime)
	})

	t.Run("Valor vazio vira nil", func(t *testing.T) {
		raw := utmifydomain.AdObject{ID: "camp-1"}

		insight := service.Normalize(raw, domain.LevelCampaign, date)

		assert.Nil(t, insight.CreatedTime)
	})
}

func TestNormalize_NivelDoRegistroVenceODoParametro(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	raw := utmifydomain.AdObject{ID: "x", Level: "ad"}

	insight := service.Normalize(raw, domain.LevelCampaign, date)

	assert.Equal(t, domain.LevelAd, insight.Level)
}

func TestNormalize_ContagensETaxas(t *testing.T) {
	service := New(&config.Config{}, nil)
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	raw := utmifydomain.AdObject{
		ID:                  "ad-1",
		Impressions:         15000,
		InlineLinkClicks:    420,
		TotalOrdersCount:    37,
		ApprovedOrdersCount: 30,
		VideoViews:          9000,
		Hook:                0.35,
		Retention:           0.12,
	}

	insight := service.Normalize(raw, domain.LevelAd, date)

	assert.Equal(t, int64(15000), insight.Impressions)
	assert.Equal(t, int64(420), insight.Clicks)
	assert.Equal(t, int64(37), insight.TotalOrders)
	assert.Equal(t, int64(30), insight.ApprovedOrders)
	assert.Equal(t, int64(9000), insight.VideoViews)
	assert.Equal(t, 0.35, insight.HookRate)
	assert.Equal(t, 0.12, insight.Retention)
}
