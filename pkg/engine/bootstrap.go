package engine

import (
	"context"
	"fmt"

	"github.com/raywall/admin-api/pkg/awsconf"
	"github.com/raywall/admin-api/pkg/config"
	"github.com/raywall/admin-api/pkg/observability"
	"github.com/raywall/admin-api/pkg/repository"
)

// Bootstrap cria os clientes reais (AWS, métricas) e o ServiceEngine.
func Bootstrap(ctx context.Context, cfg *config.ServiceConfig) (*ServiceEngine, error) {
	awsCfg, err := awsconf.Load(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("falha config AWS: %w", err)
	}

	tableName, err := resolveTableName(ctx, cfg.Table, func() awsconf.SSMClient {
		return awsconf.NewSSMClient(awsCfg)
	})
	if err != nil {
		return nil, err
	}

	client := awsconf.NewDynamoClient(awsCfg, cfg.AWS.Endpoint)
	repo := repository.NewApplicationRepository(client, tableName, cfg.Table.HashKey, cfg.Table.PageSize)

	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("falha métricas: %w", err)
	}

	return NewServiceEngine(cfg, repo, provider)
}

// resolveTableName prioriza o parâmetro SSM; sem ele, usa o nome configurado.
// O cliente SSM só é criado quando necessário.
func resolveTableName(ctx context.Context, conf config.TableConf, newClient func() awsconf.SSMClient) (string, error) {
	if conf.Parameter == "" {
		return conf.Name, nil
	}
	name, err := awsconf.ResolveParameter(ctx, newClient(), conf.Parameter)
	if err != nil {
		return "", fmt.Errorf("falha ao resolver nome da tabela: %w", err)
	}
	return name, nil
}
