package extracting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type keyed struct {
	id    string
	value int
}

func TestReconcileBy(t *testing.T) {
	tests := []struct {
		name     string
		records  []keyed
		expected []keyed
	}{
		{
			name: "Primeira ocorrência vence, mesmo com métricas diferentes depois",
			records: []keyed{
				{id: "a", value: 1},
				{id: "b", value: 2},
				{id: "a", value: 99},
			},
			expected: []keyed{
				{id: "a", value: 1},
				{id: "b", value: 2},
			},
		},
		{
			name: "Ordem de entrada deve ser preservada",
			records: []keyed{
				{id: "c", value: 3},
				{id: "a", value: 1},
				{id: "b", value: 2},
			},
			expected: []keyed{
				{id: "c", value: 3},
				{id: "a", value: 1},
				{id: "b", value: 2},
			},
		},
		{
			name: "Chave vazia deve ser descartada",
			records: []keyed{
				{id: "", value: 7},
				{id: "a", value: 1},
			},
			expected: []keyed{
				{id: "a", value: 1},
			},
		},
		{
			name:     "Lista vazia devolve lista vazia",
			records:  []keyed{},
			expected: []keyed{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReconcileBy(tt.records, func(r keyed) string { return r.id })
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReconcileBy_Deterministico(t *testing.T) {
	records := []keyed{
		{id: "x", value: 1},
		{id: "y", value: 2},
		{id: "x", value: 3},
		{id: "z", value: 4},
		{id: "y", value: 5},
	}

	first := ReconcileBy(records, func(r keyed) string { return r.id })
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ReconcileBy(records, func(r keyed) string { return r.id }))
	}
}
