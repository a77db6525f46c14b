package extracting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogritt/metrics-sync/pkg/httpretry"
)

func TestFetchAll_ConsolidaNaOrdemConfigurada(t *testing.T) {
	accountIDs := []string{"dash-1", "dash-2", "dash-3"}

	records, accountErrors, err := FetchAll(context.Background(), accountIDs, 3,
		func(ctx context.Context, accountID string) ([]string, error) {
			return []string{accountID + "-r1", accountID + "-r2"}, nil
		},
	)

	require.NoError(t, err)
	assert.Empty(t, accountErrors)
	// A ordem de chegada das goroutines não importa: o resultado segue a
	// ordem da lista configurada
	assert.Equal(t, []string{
		"dash-1-r1", "dash-1-r2",
		"dash-2-r1", "dash-2-r2",
		"dash-3-r1", "dash-3-r2",
	}, records)
}

func TestFetchAll_FalhaParcialNaoDerrubaOLote(t *testing.T) {
	accountIDs := []string{"ok-1", "quebrada", "ok-2"}
	boom := errors.New("timeout na conta")

	records, accountErrors, err := FetchAll(context.Background(), accountIDs, 2,
		func(ctx context.Context, accountID string) ([]int, error) {
			switch accountID {
			case "ok-1":
				return []int{1, 2, 3, 4}, nil
			case "ok-2":
				return []int{5, 6, 7, 8, 9}, nil
			default:
				return nil, boom
			}
		},
	)

	require.NoError(t, err)
	assert.Len(t, records, 9)
	assert.Len(t, accountErrors, 1)
	assert.Equal(t, boom, accountErrors["quebrada"])
}

func TestFetchAll_TodasAsContasCom401(t *testing.T) {
	accountIDs := []string{"dash-1", "dash-2"}

	records, accountErrors, err := FetchAll(context.Background(), accountIDs, 2,
		func(ctx context.Context, accountID string) ([]int, error) {
			return nil, &httpretry.AuthError{StatusCode: http.StatusUnauthorized}
		},
	)

	require.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Nil(t, records)
	assert.Len(t, accountErrors, 2)
}

func TestFetchAll_RejeicaoParcialDeCredencialNaoEscala(t *testing.T) {
	accountIDs := []string{"valida", "expirada"}

	records, accountErrors, err := FetchAll(context.Background(), accountIDs, 2,
		func(ctx context.Context, accountID string) ([]int, error) {
			if accountID == "expirada" {
				return nil, &httpretry.AuthError{StatusCode: http.StatusUnauthorized}
			}
			return []int{1}, nil
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, records)
	assert.Len(t, accountErrors, 1)
}

func TestFetchAll_RespeitaLimiteDeConcorrencia(t *testing.T) {
	accountIDs := make([]string, 20)
	for i := range accountIDs {
		accountIDs[i] = fmt.Sprintf("dash-%d", i)
	}

	var current, peak int32

	_, _, err := FetchAll(context.Background(), accountIDs, 3,
		func(ctx context.Context, accountID string) ([]int, error) {
			n := atomic.AddInt32(&current, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
					break
				}
			}
			defer atomic.AddInt32(&current, -1)
			return []int{1}, nil
		},
	)

	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestFetchAll_ListaVazia(t *testing.T) {
	records, accountErrors, err := FetchAll(context.Background(), nil, 3,
		func(ctx context.Context, accountID string) ([]int, error) {
			t.Fatal("fetch não deveria ser chamado")
			return nil, nil
		},
	)

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, accountErrors)
}
