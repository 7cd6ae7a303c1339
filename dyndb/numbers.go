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
package dyndb

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// unmarshalItem decodifica com UseNumber: atributos N chegam em campos
// dinâmicos (any) como json.Number, sem passar por float64.
func unmarshalItem[T any](item map[string]types.AttributeValue) (T, error) {
	var t T
	err := attributevalue.UnmarshalMapWithOptions(item, &t, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	})
	if err != nil {
		return t, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	if m, ok := any(&t).(*map[string]any); ok {
		for k, v := range *m {
			(*m)[k] = jsonNumbers(v)
		}
	}
	return t, nil
}

// jsonNumbers troca attributevalue.Number (que serializa como string) por json.Number.
func jsonNumbers(v any) any {
	switch x := v.(type) {
	case attributevalue.Number:
		return json.Number(x)
	case []attributevalue.Number:
		out := make([]json.Number, len(x))
		for i, n := range x {
			out[i] = json.Number(n)
		}
		return out
	case map[string]any:
		for k, e := range x {
			x[k] = jsonNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = jsonNumbers(e)
		}
		return x
	default:
		return v
	}
}
