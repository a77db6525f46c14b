package extracting

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/grupogritt/metrics-sync/pkg/httpretry"
)

// FetchAll dispara uma busca por conta configurada, com concorrência
// limitada por semáforo. Falha em uma conta não derruba o lote: o erro é
// registrado contra a conta e as demais seguem. Os resultados são
// consolidados na ordem da lista configurada, não na ordem de chegada,
// para que o dedup primeiro-visto seja reprodutível.
//
// Se TODAS as contas falharem com rejeição de credencial, devolve
// ErrAuthenticationFailed; qualquer outra combinação de falhas devolve o
// que sobrou, ainda que vazio.
func FetchAll[T any](
	ctx context.Context,
	accountIDs []string,
	maxConcurrent int,
	fetch func(ctx context.Context, accountID string) ([]T, error),
) ([]T, map[string]error, error) {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	results := make([][]T, len(accountIDs))
	failures := make([]error, len(accountIDs))

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, accountID := range accountIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(idx int, id string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			records, err := fetch(ctx, id)
			if err != nil {
				failures[idx] = err
				return
			}
			results[idx] = records
		}(i, accountID)
	}

	wg.Wait()

	records := make([]T, 0)
	accountErrors := make(map[string]error)
	authFailures := 0

	for i, accountID := range accountIDs {
		if err := failures[i]; err != nil {
			accountErrors[accountID] = err
			if httpretry.IsAuthError(err) {
				authFailures++
			}

			logrus.WithFields(logrus.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Warn("Falha ao buscar dados da conta; seguindo para a próxima")
			continue
		}

		records = append(records, results[i]...)
	}

	if len(accountIDs) > 0 && authFailures == len(accountIDs) {
		return nil, accountErrors, ErrAuthenticationFailed
	}

	return records, accountErrors, nil
}
