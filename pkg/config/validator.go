package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/raywall/admin-api/pkg/models"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *ServiceConfig) error {
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *ServiceConfig) error {
	seen := make(map[string]bool)
	for _, f := range cfg.Update.AllowedFields {
		if f == models.KeyField {
			return fmt.Errorf("o campo chave '%s' não pode fazer parte de allowed_fields", models.KeyField)
		}
		if seen[f] {
			return fmt.Errorf("campo duplicado em allowed_fields: '%s'", f)
		}
		seen[f] = true
	}

	return nil
}
