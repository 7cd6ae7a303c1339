package repository

import (
	"context"

	"github.com/raywall/admin-api/dyndb"
	"github.com/raywall/admin-api/pkg/models"
)

// ApplicationRepository expõe a tabela de aplicações no formato consumido pelos handlers.
type ApplicationRepository struct {
	store     dyndb.Store[models.Record]
	tableName string
	pageSize  int32
}

// NewApplicationRepository cria o repositório sobre um cliente DynamoDB.
// pageSize <= 0 deixa o tamanho da página a cargo do DynamoDB (1MB).
func NewApplicationRepository(client dyndb.DynamoDBClient, tableName, hashKey string, pageSize int32) *ApplicationRepository {
	return &ApplicationRepository{
		store: dyndb.New(client, dyndb.TableConfig[models.Record]{
			TableName: tableName,
			HashKey:   hashKey,
		}),
		tableName: tableName,
		pageSize:  pageSize,
	}
}

// TableName retorna o nome da tabela em uso.
func (r *ApplicationRepository) TableName() string {
	return r.tableName
}

// ScanPage lê uma página a partir do token. Token vazio inicia do começo;
// o próximo token volta vazio quando não há mais páginas.
func (r *ApplicationRepository) ScanPage(ctx context.Context, token string) ([]models.Record, string, error) {
	return r.store.Scan().
		Limit(r.pageSize).
		LastKey(token).
		Exec(ctx)
}

// UpdateItem aplica os campos no item identificado por id e devolve o item atualizado.
func (r *ApplicationRepository) UpdateItem(ctx context.Context, id any, fields map[string]any) (models.Record, error) {
	item, err := r.store.Update(ctx, id, nil, fields)
	if err != nil {
		return nil, err
	}
	return *item, nil
}
