package engine

import (
	"context"
	"fmt"

	"github.com/raywall/admin-api/pkg/config"
	"github.com/raywall/admin-api/pkg/handlers"
	"github.com/raywall/admin-api/pkg/logger"
	"github.com/raywall/admin-api/pkg/metrics"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/rs/zerolog"
)

const (
	RouteGetAllData        = "/api/get-all-data"
	RouteUpdateApplication = "/api/update-application"
)

// ServiceEngine é a raiz de composição: monta a tabela de rotas uma única vez no boot.
type ServiceEngine struct {
	Config   *config.ServiceConfig
	Logger   zerolog.Logger
	Metrics  metrics.Provider
	Recorder *metrics.Recorder
	Router   *router.Router
	Table    handlers.ApplicationTable
}

var _ Executor = (*ServiceEngine)(nil)

func NewServiceEngine(cfg *config.ServiceConfig, table handlers.ApplicationTable, provider metrics.Provider) (*ServiceEngine, error) {
	log := logger.Configure(cfg.Logging, cfg.Service.Name)

	policy, err := handlers.NewPatchPolicy(cfg.Update)
	if err != nil {
		return nil, fmt.Errorf("falha policy de update: %w", err)
	}

	recorder := metrics.NewRecorder(provider, "service:"+cfg.Service.Name)

	dataHandler := handlers.NewDataHandler(table, cfg.AWS.RegionOrDefault(), recorder)
	appHandler := handlers.NewApplicationHandler(table, policy)

	r := router.New()
	r.Handle(RouteGetAllData, dataHandler.GetAllData)
	r.Handle(RouteUpdateApplication, appHandler.UpdateApplication)

	log.Info().
		Str("table", table.TableName()).
		Strs("routes", r.Routes()).
		Strs("allowed_fields", cfg.Update.AllowedFields).
		Bool("update_rule", cfg.Update.Rule != "").
		Msg("engine inicializado")

	return &ServiceEngine{
		Config:   cfg,
		Logger:   log,
		Metrics:  provider,
		Recorder: recorder,
		Router:   r,
		Table:    table,
	}, nil
}

// Execute delega ao roteador. Nenhum erro escapa daqui.
func (se *ServiceEngine) Execute(ctx context.Context, req router.Request) router.Response {
	return se.Router.Dispatch(ctx, req)
}

// Flush envia métricas pendentes quando o provider suporta (Datadog).
// Na Lambda é chamado ao fim de cada invocação, antes do congelamento do ambiente.
func (se *ServiceEngine) Flush() {
	if f, ok := se.Metrics.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			se.Logger.Warn().Err(err).Msg("falha ao enviar métricas")
		}
	}
}

func (se *ServiceEngine) Shutdown(ctx context.Context) error {
	se.Flush()
	if c, ok := se.Metrics.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
