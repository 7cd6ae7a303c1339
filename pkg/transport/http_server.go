package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/raywall/admin-api/pkg/engine"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/rs/zerolog/log"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"
	ContextKeyCorrID    = "correlation_id"
)

const shutdownTimeout = 10 * time.Second

// NewHTTPHandler expõe a engine em HTTP. Toda rota cai no mesmo handler:
// o roteamento por path é feito pela própria engine, igual à Lambda.
func NewHTTPHandler(svc *engine.ServiceEngine) http.Handler {
	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(createEngineHandler(svc))
	r.Use(ObservabilityMiddleware, metricsMiddleware(svc))
	return r
}

// StartHTTPServer sobe o runtime local e bloqueia até o processo receber sinal de parada.
func StartHTTPServer(ctx context.Context, svc *engine.ServiceEngine) error {
	addr := fmt.Sprintf(":%d", svc.Config.Service.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		svc.Logger.Info().Msgf("Servidor HTTP ouvindo em %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	svc.Logger.Info().Msg("encerrando servidor HTTP")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return svc.Shutdown(shutdownCtx)
}

func createEngineHandler(svc *engine.ServiceEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := router.Request{
			Method:  r.Method,
			Path:    r.URL.Path,
			Headers: make(map[string]string, len(r.Header)),
		}
		for k, v := range r.Header {
			if len(v) > 0 {
				req.Headers[k] = v[0]
			}
		}

		bodyBytes, err := io.ReadAll(r.Body)
		defer r.Body.Close()
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Msg("falha ao ler corpo")
			writeResponse(w, router.Error(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if len(bodyBytes) > 0 {
			body := string(bodyBytes)
			req.Body = &body
		}

		writeResponse(w, svc.Execute(r.Context(), req))
	}
}

func writeResponse(w http.ResponseWriter, resp router.Response) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = io.WriteString(w, resp.Body)
}

// --- MIDDLEWARES ---
type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	duration := time.Since(rw.startTime)
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", duration.Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func ObservabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		corrID := r.Header.Get(HeaderCorrelationID)
		if corrID == "" {
			corrID = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, corrID)

		logger := log.With().Str("correlation_id", corrID).Logger()
		ctx := logger.WithContext(r.Context())
		ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			startTime:      start,
		}

		next.ServeHTTP(wrapper, r.WithContext(ctx))

		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapper.statusCode).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request completed")
	})
}

// metricsMiddleware roda dentro do ObservabilityMiddleware e lê o status do wrapper.
func metricsMiddleware(svc *engine.ServiceEngine) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			status := http.StatusOK
			if rw, ok := w.(*responseWriterWrapper); ok {
				status = rw.statusCode
			}
			svc.Recorder.ObserveRequest(r.URL.Path, status, time.Since(start))
		})
	}
}
