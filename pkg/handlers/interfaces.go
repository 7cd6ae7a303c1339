package handlers

import (
	"context"

	"github.com/raywall/admin-api/pkg/models"
)

// ApplicationTable é o colaborador de armazenamento usado pelos handlers.
// *repository.ApplicationRepository é a implementação real.
type ApplicationTable interface {
	TableName() string
	// ScanPage devolve uma página e o token da próxima ("" na última).
	ScanPage(ctx context.Context, token string) ([]models.Record, string, error)
	// UpdateItem aplica os campos e devolve o item completo após a escrita.
	UpdateItem(ctx context.Context, id any, fields map[string]any) (models.Record, error)
}
