package metrics

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Recorder traduz eventos do serviço em chamadas ao Provider.
//
// Falhas de envio são apenas logadas: métricas nunca alteram a resposta.
type Recorder struct {
	provider Provider
	tags     []string
}

// NewRecorder cria um Recorder com tags fixas (ex: "service:admin-api").
func NewRecorder(provider Provider, baseTags ...string) *Recorder {
	return &Recorder{provider: provider, tags: baseTags}
}

// ObserveRequest registra contagem e latência de uma requisição.
func (r *Recorder) ObserveRequest(path string, status int, latency time.Duration) {
	if r == nil || r.provider == nil {
		return
	}
	tags := r.with(fmt.Sprintf("path:%s", path), fmt.Sprintf("status:%d", status))

	if err := r.provider.Count(MetricRequests, 1, tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricRequests).Msg("metric not sent")
	}
	if err := r.provider.Histogram(MetricLatency, float64(latency.Milliseconds()), tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricLatency).Msg("metric not sent")
	}
}

// ObserveScan registra quantos itens uma leitura completa retornou.
func (r *Recorder) ObserveScan(table string, count int) {
	if r == nil || r.provider == nil {
		return
	}
	if err := r.provider.Gauge(MetricScannedItems, float64(count), r.with("table:"+table)); err != nil {
		log.Warn().Err(err).Str("metric", MetricScannedItems).Msg("metric not sent")
	}
}

func (r *Recorder) with(extra ...string) []string {
	tags := make([]string, 0, len(r.tags)+len(extra))
	tags = append(tags, r.tags...)
	return append(tags, extra...)
}
