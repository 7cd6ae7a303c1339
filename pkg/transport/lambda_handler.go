package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/admin-api/pkg/engine"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/rs/zerolog/log"
)

// proxyEvent aceita o evento do API Gateway e também a variante com "method".
// Body como ponteiro distingue corpo ausente/null de corpo vazio.
type proxyEvent struct {
	events.APIGatewayProxyRequest
	Method string  `json:"method"`
	Body   *string `json:"body"`
}

// LambdaHandler adapta eventos do API Gateway para a ServiceEngine
type LambdaHandler struct {
	svc *engine.ServiceEngine
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(svc *engine.ServiceEngine) *LambdaHandler {
	return &LambdaHandler{svc: svc}
}

// Handle processa a invocação. O erro retornado é sempre nil: qualquer falha
// vira uma resposta HTTP.
func (h *LambdaHandler) Handle(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	start := time.Now()

	var evt proxyEvent
	decodeErr := json.Unmarshal(raw, &evt)

	corrID := headerValue(evt.Headers, HeaderCorrelationID)
	if corrID == "" {
		corrID = uuid.NewString()
	}

	// Configura Logger Contextual
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

	req := router.Request{
		Method:  evt.HTTPMethod,
		Path:    evt.Path,
		Headers: evt.Headers,
		Body:    evt.Body,
	}
	if req.Method == "" {
		req.Method = evt.Method
	}

	var resp router.Response
	if decodeErr != nil {
		logger.Error().Err(decodeErr).Msg("evento inválido")
		resp = router.Error(http.StatusBadRequest, "Invalid event payload")
	} else {
		logger.Info().RawJSON("event", raw).Msg("evento recebido")
		resp = h.svc.Execute(ctx, req)
	}

	latency := time.Since(start)
	h.svc.Recorder.ObserveRequest(req.Path, resp.StatusCode, latency)
	h.svc.Flush()

	logger.Info().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", latency.Milliseconds()).
		Msg("lambda request completed")

	return toProxyResponse(resp, corrID), nil
}

func toProxyResponse(resp router.Response, corrID string) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers[HeaderCorrelationID] = corrID

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       resp.Body,
	}
}

// headerValue faz a busca sem diferenciar maiúsculas; o API Gateway pode ou não normalizar.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
