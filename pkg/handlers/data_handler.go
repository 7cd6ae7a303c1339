package handlers

import (
	"context"
	"net/http"

	"github.com/raywall/admin-api/pkg/metrics"
	"github.com/raywall/admin-api/pkg/models"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/rs/zerolog/log"
)

const sampleSize = 2

type dataResponse struct {
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    []models.Record `json:"data"`
}

// DataHandler atende a leitura completa da tabela.
type DataHandler struct {
	table    ApplicationTable
	region   string
	recorder *metrics.Recorder
}

func NewDataHandler(table ApplicationTable, region string, recorder *metrics.Recorder) *DataHandler {
	return &DataHandler{table: table, region: region, recorder: recorder}
}

// GetAllData percorre todas as páginas do Scan e devolve os itens na ordem do store.
// Qualquer falha aborta a leitura inteira; não há retentativa aqui.
func (h *DataHandler) GetAllData(ctx context.Context, _ router.Request) router.Response {
	logger := log.Ctx(ctx).With().Str("table", h.table.TableName()).Logger()
	logger.Info().Str("region", h.region).Msg("iniciando leitura completa da tabela")

	items := make([]models.Record, 0)
	token := ""
	for page := 1; ; page++ {
		batch, next, err := h.table.ScanPage(ctx, token)
		if err != nil {
			logger.Error().Err(err).Int("page", page).Msg("falha no scan")
			return router.Error(http.StatusInternalServerError, "Failed to retrieve data: "+err.Error())
		}
		items = append(items, batch...)

		logger.Info().
			Int("page", page).
			Int("page_items", len(batch)).
			Int("total_items", len(items)).
			Bool("has_more", next != "").
			Msg("página lida")

		if next == "" {
			break
		}
		token = next
	}

	logger.Info().
		Int("count", len(items)).
		Interface("sample", items[:min(sampleSize, len(items))]).
		Msg("leitura concluída")
	h.recorder.ObserveScan(h.table.TableName(), len(items))

	return router.JSON(http.StatusOK, dataResponse{
		Message: "Data retrieved successfully",
		Count:   len(items),
		Data:    items,
	})
}
