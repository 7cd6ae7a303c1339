package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/raywall/admin-api/envloader"
	"github.com/raywall/admin-api/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// FetchFunc baixa o conteúdo YAML de uma fonte remota (s3://, dynamodb://).
type FetchFunc func(ctx context.Context, source *url.URL) ([]byte, error)

// Loader monta a configuração final: YAML opcional (arquivo local ou fonte
// remota), depois variáveis de ambiente (que têm precedência), depois
// interpolação ${...}, depois validação.
type Loader struct {
	fetchers  map[string]FetchFunc
	injector  *injector.Injector
	validator *ConfigValidator
}

func NewLoader() *Loader {
	return &Loader{
		fetchers:  make(map[string]FetchFunc),
		injector:  injector.New(),
		validator: NewValidator(),
	}
}

// WithFetcher registra o leitor de um esquema de URI.
func (l *Loader) WithFetcher(scheme string, fn FetchFunc) *Loader {
	l.fetchers[scheme] = fn
	return l
}

// WithResolver registra uma fonte de interpolação (${ssm.*}, ${secret.*}).
func (l *Loader) WithResolver(source string, fn injector.ResolverFunc) *Loader {
	l.injector.WithResolver(source, fn)
	return l
}

// Load apenas com arquivo local e ${env.*}.
func Load(path string) (*ServiceConfig, error) {
	return NewLoader().Load(context.Background(), path)
}

func (l *Loader) Load(ctx context.Context, source string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if source != "" {
		raw, err := l.read(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("falha parse yaml (%s): %w", source, err)
		}
	}

	if err := envloader.Load(cfg); err != nil {
		return nil, err
	}

	if err := l.injector.Inject(ctx, cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	if !strings.Contains(source, "://") || strings.HasPrefix(source, "file://") {
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("URI inválida: %w", err)
	}
	fetch, ok := l.fetchers[u.Scheme]
	if !ok {
		return nil, fmt.Errorf("esquema não suportado: %s", u.Scheme)
	}
	return fetch(ctx, u)
}
