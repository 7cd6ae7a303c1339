package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/admin-api/pkg/config"
	"github.com/raywall/admin-api/pkg/engine"
	"github.com/raywall/admin-api/pkg/models"
	"github.com/raywall/admin-api/pkg/observability"
	"github.com/stretchr/testify/require"
)

type fakeTable struct {
	scanErr error
	updated map[string]any
}

func (f *fakeTable) TableName() string { return "applications" }

func (f *fakeTable) ScanPage(ctx context.Context, token string) ([]models.Record, string, error) {
	if f.scanErr != nil {
		return nil, "", f.scanErr
	}
	return []models.Record{{"id": "app-1", "status": "new"}}, "", nil
}

func (f *fakeTable) UpdateItem(ctx context.Context, id any, fields map[string]any) (models.Record, error) {
	if len(fields) == 0 {
		return nil, errors.New("empty update")
	}
	f.updated = fields
	item := models.Record{"id": id}
	for k, v := range fields {
		item[k] = v
	}
	return item, nil
}

type countingProvider struct {
	observability.NoopProvider
	requests int
	flushes  int
}

func (c *countingProvider) Count(name string, value float64, tags []string) error {
	c.requests++
	return nil
}

func (c *countingProvider) Flush() error {
	c.flushes++
	return nil
}

func newTestEngine(t *testing.T, table *fakeTable, provider *countingProvider) *engine.ServiceEngine {
	t.Helper()
	cfg := &config.ServiceConfig{
		Service: config.ServiceDetails{Name: "admin-api", Runtime: "local", Port: 8080},
		Logging: config.LoggingConf{Disabled: true},
	}
	svc, err := engine.NewServiceEngine(cfg, table, provider)
	require.NoError(t, err)
	return svc
}
