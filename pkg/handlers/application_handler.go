package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/raywall/admin-api/pkg/models"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/rs/zerolog/log"
)

type updateResponse struct {
	Message     string        `json:"message"`
	UpdatedItem models.Record `json:"updatedItem"`
}

// ApplicationHandler atende a atualização parcial de uma aplicação.
type ApplicationHandler struct {
	table  ApplicationTable
	policy *PatchPolicy
}

// NewApplicationHandler aceita policy nil (patch sem restrições).
func NewApplicationHandler(table ApplicationTable, policy *PatchPolicy) *ApplicationHandler {
	return &ApplicationHandler{table: table, policy: policy}
}

// UpdateApplication aplica um SET por campo do corpo (exceto id) e devolve o item atualizado.
func (h *ApplicationHandler) UpdateApplication(ctx context.Context, req router.Request) router.Response {
	logger := log.Ctx(ctx).With().Str("table", h.table.TableName()).Logger()

	body, err := decodeBody(req.BodyString())
	if err != nil {
		logger.Error().Err(err).Msg("corpo inválido")
		return updateFailed(err)
	}

	id, fields, err := h.policy.Build(body)
	if err != nil {
		var notAllowed *FieldNotAllowedError
		switch {
		case errors.Is(err, ErrMissingID):
			logger.Warn().Msg("update sem id")
			return router.Error(http.StatusBadRequest, "Application ID is required")
		case errors.As(err, &notAllowed):
			logger.Warn().Str("field", notAllowed.Field).Msg("campo fora da allow-list")
			return router.Error(http.StatusBadRequest, notAllowed.Error())
		case errors.Is(err, ErrRuleRejected):
			logger.Warn().Interface("id", body[models.KeyField]).Msg("update rejeitado pela regra")
			return router.Error(http.StatusBadRequest, "Update rejected by policy")
		case errors.Is(err, ErrRuleEvaluation):
			logger.Error().Err(err).Msg("erro ao avaliar regra de update")
			return updateFailed(ErrRuleEvaluation)
		default:
			logger.Error().Err(err).Msg("falha ao montar patch")
			return updateFailed(err)
		}
	}

	logger.Info().
		Interface("id", id).
		Strs("fields", fieldNames(fields)).
		Msg("aplicando update")

	item, err := h.table.UpdateItem(ctx, id, fields)
	if err != nil {
		logger.Error().Err(err).Interface("id", id).Msg("falha no update")
		return updateFailed(err)
	}

	return router.JSON(http.StatusOK, updateResponse{
		Message:     "Application updated successfully",
		UpdatedItem: item,
	})
}

func updateFailed(err error) router.Response {
	return router.Error(http.StatusInternalServerError, "Failed to update application: "+err.Error())
}

// decodeBody exige um objeto JSON; corpo vazio ou "null" é erro.
// Números viram json.Number para não perder precisão acima de 2^53.
func decodeBody(raw string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrBodyNotAnObject
	}
	if body == nil {
		return nil, ErrBodyNotAnObject
	}
	return body, nil
}

func fieldNames(fields map[string]any) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
