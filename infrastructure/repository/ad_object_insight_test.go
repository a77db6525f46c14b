package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogritt/metrics-sync/internal/domain"
)

func makeInsights(n int) []domain.AdObjectInsight {
	insights := make([]domain.AdObjectInsight, n)
	for i := range insights {
		insights[i] = domain.AdObjectInsight{
			EntityID:   fmt.Sprintf("camp-%d", i),
			ReportDate: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Level:      domain.LevelCampaign,
		}
	}
	return insights
}

func TestBuildInsert(t *testing.T) {
	repo := &adObjectInsightRepository{tables: CampaignTables}

	t.Run("Snapshot gera INSERT simples com placeholders dollar", func(t *testing.T) {
		query, args, err := repo.buildInsert(CampaignTables.Today, makeInsights(2), "")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(query, "INSERT INTO campaigns_today"))
		assert.NotContains(t, query, "ON CONFLICT")
		assert.Contains(t, query, "$1")
		assert.Len(t, args, 2*len(adObjectColumns))
	})

	t.Run("Histórico anexa o upsert pela chave natural", func(t *testing.T) {
		query, _, err := repo.buildInsert(CampaignTables.History, makeInsights(1), upsertSuffix)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(query, "INSERT INTO campaigns_history"))
		assert.Contains(t, query, "ON CONFLICT (entity_id, report_date) DO UPDATE SET")
		assert.Contains(t, query, "spend = EXCLUDED.spend")
		assert.Contains(t, query, "updated_at = NOW()")
	})

	t.Run("Data de referência é formatada como dia civil", func(t *testing.T) {
		_, args, err := repo.buildInsert(CampaignTables.Today, makeInsights(1), "")

		require.NoError(t, err)
		assert.Equal(t, "camp-0", args[0])
		assert.Equal(t, "2025-03-15", args[1])
		assert.Equal(t, "campaign", args[2])
	})
}

func TestBatchInsights(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		expected []int
	}{
		{
			name:     "Lote menor que o limite vira um único batch",
			total:    10,
			expected: []int{10},
		},
		{
			name:     "Lote no limite exato não quebra",
			total:    insertBatchSize,
			expected: []int{insertBatchSize},
		},
		{
			name:     "Lote acima do limite é dividido",
			total:    insertBatchSize + 1,
			expected: []int{insertBatchSize, 1},
		},
		{
			name:     "Lote grande gera vários batches completos",
			total:    insertBatchSize*2 + 37,
			expected: []int{insertBatchSize, insertBatchSize, 37},
		},
		{
			name:     "Lote vazio não gera batches",
			total:    0,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batches := batchInsights(makeInsights(tt.total))

			sizes := make([]int, 0, len(batches))
			for _, batch := range batches {
				sizes = append(sizes, len(batch))
			}

			if tt.expected == nil {
				assert.Empty(t, batches)
				return
			}
			assert.Equal(t, tt.expected, sizes)
		})
	}
}

func TestBatchInsights_ColunasAbaixoDoLimiteDeParametros(t *testing.T) {
	// O limite de parâmetros do Postgres é 65535; o tamanho de batch tem que
	// caber com a tabela mais larga
	assert.Less(t, insertBatchSize*len(adObjectColumns), 65535)
}
