package extracting

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrAuthenticationFailed indica que todas as contas consultadas falharam
// com rejeição de credencial. Diferente de "sem dados": retentar é inútil
// até o token ser renovado.
var ErrAuthenticationFailed = errors.New("todas as contas falharam com rejeição de credencial")

// StorageError indica falha na gravação do lote. Fatal para a execução:
// nenhuma linha parcial fica visível e o chamador decide se reexecuta.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("falha ao persistir o lote: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
