package engine

import (
	"context"

	"github.com/raywall/admin-api/pkg/router"
)

// Executor é a interface de tempo de execução usada pelos transportes.
// Deve ser segura para chamadas concorrentes (servidor HTTP local).
type Executor interface {
	// Execute processa uma única requisição e devolve sempre uma resposta.
	Execute(ctx context.Context, req router.Request) router.Response

	// Shutdown realiza o encerramento gracioso de recursos (flush de métricas).
	Shutdown(ctx context.Context) error
}
