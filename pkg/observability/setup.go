package observability

import (
	"fmt"

	"github.com/DataDog/datadog-go/v5/statsd"
	"github.com/raywall/admin-api/pkg/config"
	"github.com/raywall/admin-api/pkg/metrics"
)

// NoopProvider é usado quando métricas estão desabilitadas.
type NoopProvider struct{}

func (n *NoopProvider) Count(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Gauge(name string, value float64, tags []string) error     { return nil }
func (n *NoopProvider) Histogram(name string, value float64, tags []string) error { return nil }

// DatadogProvider adapta a lib oficial do Datadog para metrics.Provider.
type DatadogProvider struct {
	client statsd.ClientInterface
}

func (d *DatadogProvider) Count(name string, value float64, tags []string) error {
	return d.client.Count(name, int64(value), tags, 1)
}

func (d *DatadogProvider) Gauge(name string, value float64, tags []string) error {
	return d.client.Gauge(name, value, tags, 1)
}

func (d *DatadogProvider) Histogram(name string, value float64, tags []string) error {
	return d.client.Histogram(name, value, tags, 1)
}

// Flush esvazia o buffer do statsd. Em Lambda deve ser chamado ao fim de cada
// invocação, já que o ambiente pode ser congelado antes do flush periódico.
func (d *DatadogProvider) Flush() error {
	return d.client.Flush()
}

// Close encerra o cliente statsd (shutdown do servidor local).
func (d *DatadogProvider) Close() error {
	return d.client.Close()
}

// SetupMetrics inicializa o provedor correto baseado na configuração.
func SetupMetrics(cfg config.MetricsConf) (metrics.Provider, error) {
	if !cfg.Datadog.Enabled {
		return &NoopProvider{}, nil
	}

	opts := []statsd.Option{
		statsd.WithNamespace(cfg.Datadog.Namespace),
	}

	client, err := statsd.New(cfg.Datadog.Addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no datadog statsd: %w", err)
	}

	return &DatadogProvider{client: client}, nil
}
