package router

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Router é a tabela de rotas por path exato. O método HTTP não participa
// do roteamento, exceto OPTIONS, que é sempre respondido como preflight.
type Router struct {
	routes map[string]HandlerFunc
}

func New() *Router {
	return &Router{routes: make(map[string]HandlerFunc)}
}

// Handle registra (ou substitui) o handler de um path.
func (r *Router) Handle(path string, fn HandlerFunc) {
	r.routes[path] = fn
}

// Routes lista os paths registrados em ordem alfabética.
func (r *Router) Routes() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dispatch produz exatamente uma Response para cada Request.
func (r *Router) Dispatch(ctx context.Context, req Request) Response {
	if strings.EqualFold(req.Method, http.MethodOptions) {
		return Preflight()
	}

	fn, ok := r.routes[req.Path]
	if !ok {
		log.Ctx(ctx).Warn().Str("path", req.Path).Msg("rota não encontrada")
		return Error(http.StatusNotFound, "Not found")
	}
	return fn(ctx, req)
}
