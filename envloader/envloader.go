// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package envloader

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Load preenche uma struct com valores de variáveis de ambiente
// baseado nas tags "env" e "envDefault".
//
// Precedência: variável de ambiente > valor já presente no campo > envDefault.
// Isso permite carregar um arquivo (YAML) antes e deixar o ambiente sobrescrever
// apenas o que foi definido explicitamente.
func Load(config interface{}) error {
	val := reflect.ValueOf(config)
	if !val.IsValid() {
		return &InvalidConfigError{}
	}
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return &InvalidConfigError{Value: val.Type()}
	}

	return loadStruct(val.Elem())
}

// loadStruct processa recursivamente uma struct
func loadStruct(val reflect.Value) error {
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := loadStruct(field); err != nil {
				return err
			}
			continue
		}

		if field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			if err := loadStruct(field.Elem()); err != nil {
				return err
			}
			continue
		}

		envTag := fieldType.Tag.Get("env")
		if envTag == "" {
			continue
		}

		envValue, found := os.LookupEnv(envTag)
		if !found || envValue == "" {
			// Default só preenche campos ainda zerados
			if !field.IsZero() {
				continue
			}
			envValue = fieldType.Tag.Get("envDefault")
		}

		if envValue == "" {
			continue
		}

		if err := setFieldValue(field, envValue); err != nil {
			return &FieldError{
				FieldName: fieldType.Name,
				EnvVar:    envTag,
				Value:     envValue,
				Err:       err,
			}
		}
	}

	return nil
}

// setFieldValue define o valor de um campo baseado no seu tipo
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(intValue)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetUint(uintValue)

	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.ToLower(value))
		if err != nil {
			return err
		}
		field.SetBool(boolValue)

	case reflect.Float32, reflect.Float64:
		floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetFloat(floatValue)

	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return &UnsupportedTypeError{Type: field.Type()}
		}
		parts := splitList(value)
		list := reflect.MakeSlice(field.Type(), len(parts), len(parts))
		for i, p := range parts {
			list.Index(i).SetString(p)
		}
		field.Set(list)

	default:
		return &UnsupportedTypeError{Type: field.Type()}
	}

	return nil
}

// splitList quebra "a, b,,c" em [a b c]
func splitList(value string) []string {
	raw := strings.Split(value, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MustLoad é similar ao Load, mas panic em caso de erro
func MustLoad(config interface{}) {
	if err := Load(config); err != nil {
		panic(err)
	}
}
