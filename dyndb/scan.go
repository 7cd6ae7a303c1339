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
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanBuilder é o builder fluente de uma página de Scan.
type ScanBuilder[T any] struct {
	store  *dynamoStore[T]
	limit  *int32
	cursor string
}

// Limit define o tamanho máximo da página. Valores <= 0 deixam o DynamoDB decidir (1MB).
func (sb *ScanBuilder[T]) Limit(n int32) *ScanBuilder[T] {
	if n > 0 {
		sb.limit = &n
	}
	return sb
}

// LastKey continua a leitura a partir de um cursor devolvido por Exec.
func (sb *ScanBuilder[T]) LastKey(token string) *ScanBuilder[T] {
	sb.cursor = token
	return sb
}

// Exec lê uma única página. O cursor retornado é vazio na última página.
func (sb *ScanBuilder[T]) Exec(ctx context.Context) ([]T, string, error) {
	startKey, err := DecodeCursor(sb.cursor)
	if err != nil {
		return nil, "", err
	}

	out, err := sb.store.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:         aws.String(sb.store.cfg.TableName),
		Limit:             sb.limit,
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		return nil, "", fmt.Errorf("dyndb: scan failed: %w", err)
	}

	return unmarshalPage[T](out.Items, out.LastEvaluatedKey)
}

func unmarshalPage[T any](
	items []map[string]types.AttributeValue,
	lastKey map[string]types.AttributeValue,
) ([]T, string, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		t, err := unmarshalItem[T](item)
		if err != nil {
			return nil, "", err
		}
		result = append(result, t)
	}

	token, err := EncodeCursor(lastKey)
	if err != nil {
		return nil, "", err
	}
	return result, token, nil
}
