package router

import "context"

// Request é a visão do evento de entrada independente do runtime (Lambda ou HTTP local).
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    *string // nil quando o evento não tem corpo
}

// BodyString retorna o corpo ou "" quando ausente.
func (r Request) BodyString() string {
	if r.Body == nil {
		return ""
	}
	return *r.Body
}

// Response é sempre serializada como JSON pelo transporte.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// HandlerFunc atende uma rota. Erros já devem estar convertidos em Response.
type HandlerFunc func(ctx context.Context, req Request) Response
