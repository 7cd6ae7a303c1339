package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/cel-go/cel"
	"github.com/raywall/admin-api/pkg/config"
	"github.com/raywall/admin-api/pkg/models"
	"github.com/raywall/admin-api/pkg/rules"
)

var (
	ErrMissingID       = errors.New("application id is required")
	ErrFieldNotAllowed = errors.New("field is not allowed")
	ErrRuleRejected    = errors.New("update rejected by policy")
	ErrBodyNotAnObject = errors.New("request body must be a JSON object")
	ErrRuleEvaluation  = errors.New("update rule could not be evaluated")
)

// FieldNotAllowedError identifica o primeiro campo (em ordem alfabética) fora da allow-list.
type FieldNotAllowedError struct {
	Field string
}

func (e *FieldNotAllowedError) Error() string {
	return fmt.Sprintf("Field '%s' is not allowed", e.Field)
}

func (e *FieldNotAllowedError) Is(target error) bool {
	return target == ErrFieldNotAllowed
}

// PatchPolicy transforma o corpo da requisição em (id, campos) e aplica as
// restrições opcionais de atualização. Sem allow-list e sem regra, qualquer
// campo é aceito.
type PatchPolicy struct {
	allowed map[string]struct{}
	rule    cel.Program
}

// NewPatchPolicy compila a regra CEL uma única vez. Regra inválida é erro de startup.
func NewPatchPolicy(cfg config.UpdateConf) (*PatchPolicy, error) {
	p := &PatchPolicy{}

	if len(cfg.AllowedFields) > 0 {
		p.allowed = make(map[string]struct{}, len(cfg.AllowedFields))
		for _, f := range cfg.AllowedFields {
			p.allowed[f] = struct{}{}
		}
	}

	if cfg.Rule != "" {
		rm, err := rules.NewRuleManager()
		if err != nil {
			return nil, err
		}
		prg, err := rm.CompileProgram(cfg.Rule)
		if err != nil {
			return nil, fmt.Errorf("regra de update inválida: %w", err)
		}
		p.rule = prg
	}

	return p, nil
}

// Build separa o id dos demais campos. Um patch vazio não é erro aqui:
// quem rejeita é o store.
func (p *PatchPolicy) Build(body map[string]any) (any, map[string]any, error) {
	id := body[models.KeyField]
	if isEmptyID(id) {
		return nil, nil, ErrMissingID
	}

	fields := make(map[string]any, len(body))
	for k, v := range body {
		if k != models.KeyField {
			fields[k] = v
		}
	}

	if p == nil {
		return id, fields, nil
	}

	if p.allowed != nil {
		names := make([]string, 0, len(fields))
		for k := range fields {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, name := range names {
			if _, ok := p.allowed[name]; !ok {
				return nil, nil, &FieldNotAllowedError{Field: name}
			}
		}
	}

	if p.rule != nil {
		ok, err := rules.EvaluateBool(p.rule, map[string]interface{}{
			"input": celValue(fields),
			"id":    celValue(id),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrRuleEvaluation, err)
		}
		if !ok {
			return nil, nil, ErrRuleRejected
		}
	}

	return id, fields, nil
}

// isEmptyID trata como ausente: nil, "", 0, false e coleções vazias.
func isEmptyID(id any) bool {
	switch v := id.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	case float64:
		return v == 0
	case bool:
		return !v
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// celValue converte json.Number para int64 (ou float64) antes da avaliação;
// o adapter do CEL não conhece json.Number.
func celValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = celValue(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = celValue(item)
		}
		return out
	default:
		return v
	}
}
