package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// RuleManager gerencia a compilação e avaliação de expressões CEL.
type RuleManager struct {
	env *cel.Env
}

// NewRuleManager inicializa o ambiente CEL com as variáveis expostas às regras
// de atualização.
func NewRuleManager() (*RuleManager, error) {
	env, err := cel.NewEnv(
		cel.StdLib(),
		cel.Declarations(
			decls.NewVar("input", decls.Dyn), // campos do patch (sem id)
			decls.NewVar("id", decls.Dyn),    // chave do registro
		),
	)
	if err != nil {
		return nil, fmt.Errorf("erro fatal CEL init: %w", err)
	}

	return &RuleManager{env: env}, nil
}

// CompileProgram compila a expressão uma única vez, no boot.
func (rm *RuleManager) CompileProgram(expr string) (cel.Program, error) {
	ast, issues := rm.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("erro de compilação CEL '%s': %w", expr, issues.Err())
	}
	prg, err := rm.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar programa CEL: %w", err)
	}
	return prg, nil
}

// EvaluateBool executa um programa já compilado que deve retornar true/false.
func EvaluateBool(prg cel.Program, ctx map[string]interface{}) (bool, error) {
	out, _, err := prg.Eval(ctx)
	if err != nil {
		return false, fmt.Errorf("erro execução CEL: %w", err)
	}

	if val, ok := out.Value().(bool); ok {
		return val, nil
	}
	return false, fmt.Errorf("resultado não é booleano: %T", out.Value())
}
