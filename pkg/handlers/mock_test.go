package handlers_test

import (
	"context"

	"github.com/raywall/admin-api/pkg/models"
	"github.com/stretchr/testify/mock"
)

type MockTable struct {
	mock.Mock
}

func (m *MockTable) TableName() string {
	return "applications-test"
}

func (m *MockTable) ScanPage(ctx context.Context, token string) ([]models.Record, string, error) {
	args := m.Called(ctx, token)
	items, _ := args.Get(0).([]models.Record)
	return items, args.String(1), args.Error(2)
}

func (m *MockTable) UpdateItem(ctx context.Context, id any, fields map[string]any) (models.Record, error) {
	args := m.Called(ctx, id, fields)
	item, _ := args.Get(0).(models.Record)
	return item, args.Error(1)
}
