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
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// cursorValue guarda um atributo de chave com o seu tipo original.
// Chaves de tabela DynamoDB só podem ser S, N ou B.
type cursorValue struct {
	S *string `json:"S,omitempty"`
	N *string `json:"N,omitempty"`
	B []byte  `json:"B,omitempty"`
}

// EncodeCursor transforma um LastEvaluatedKey em token opaco.
// Um mapa vazio (fim da tabela) gera token vazio.
func EncodeCursor(lastKey map[string]types.AttributeValue) (string, error) {
	if len(lastKey) == 0 {
		return "", nil
	}

	raw := make(map[string]cursorValue, len(lastKey))
	for name, av := range lastKey {
		switch v := av.(type) {
		case *types.AttributeValueMemberS:
			raw[name] = cursorValue{S: &v.Value}
		case *types.AttributeValueMemberN:
			raw[name] = cursorValue{N: &v.Value}
		case *types.AttributeValueMemberB:
			raw[name] = cursorValue{B: v.Value}
		default:
			return "", fmt.Errorf("dyndb: unsupported key attribute %q (%T)", name, av)
		}
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("dyndb: encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// DecodeCursor faz o caminho inverso de EncodeCursor. Token vazio devolve nil.
func DecodeCursor(token string) (map[string]types.AttributeValue, error) {
	if token == "" {
		return nil, nil
	}

	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	var raw map[string]cursorValue
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCursor, err)
	}

	key := make(map[string]types.AttributeValue, len(raw))
	for name, v := range raw {
		switch {
		case v.S != nil:
			key[name] = &types.AttributeValueMemberS{Value: *v.S}
		case v.N != nil:
			key[name] = &types.AttributeValueMemberN{Value: *v.N}
		case v.B != nil:
			key[name] = &types.AttributeValueMemberB{Value: v.B}
		default:
			return nil, fmt.Errorf("%w: empty attribute %q", ErrInvalidCursor, name)
		}
	}
	if len(key) == 0 {
		return nil, ErrInvalidCursor
	}
	return key, nil
}
