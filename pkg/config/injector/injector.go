package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.API_KEY}, ${ssm./admin/table}, ${secret.admin-api#rule}
var pattern = regexp.MustCompile(`\$\{([a-z]+)\.([^}]+)\}`)

// ResolverFunc busca o valor de uma chave em uma fonte externa.
type ResolverFunc func(ctx context.Context, key string) (string, error)

type Injector struct {
	resolvers map[string]ResolverFunc
}

// New cria um Injector que já resolve ${env.*}. Fontes remotas (ssm, secret)
// são registradas pelo chamador, que decide como criar os clientes.
func New() *Injector {
	return &Injector{
		resolvers: map[string]ResolverFunc{
			"env": func(_ context.Context, key string) (string, error) {
				return os.Getenv(key), nil
			},
		},
	}
}

// WithResolver registra (ou substitui) a fonte de um prefixo.
func (i *Injector) WithResolver(source string, fn ResolverFunc) *Injector {
	i.resolvers[source] = fn
	return i
}

// Inject percorre a struct e interpola strings e []string.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if !v.Field(k).CanSet() {
				continue
			}
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return fmt.Errorf("%s: %w", v.Type().Field(k).Name, err)
			}
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		groups := pattern.FindStringSubmatch(match)
		source, key := groups[1], groups[2]

		resolve, ok := i.resolvers[source]
		if !ok {
			err = fmt.Errorf("fonte desconhecida '%s' em %s", source, match)
			return match
		}

		val, resolveErr := resolve(ctx, key)
		if resolveErr != nil {
			err = resolveErr
			return match
		}
		return val
	})

	return result, err
}
