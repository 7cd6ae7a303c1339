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
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig[T]
}

// New cria um store reutilizável
func New[T any](client DynamoDBClient, cfg TableConfig[T]) Store[T] {
	if cfg.HashKey == "" {
		cfg.HashKey = "id"
	}
	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

// Scan inicia um Scan
func (s *dynamoStore[T]) Scan() *ScanBuilder[T] {
	return &ScanBuilder[T]{store: s}
}

// Update monta "SET #a = :a, #b = :b" a partir dos campos e executa UpdateItem
func (s *dynamoStore[T]) Update(ctx context.Context, hashKey, sortKey any, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	expr, err := buildUpdateExpression(fields)
	if err != nil {
		return nil, fmt.Errorf("dyndb: build update expression failed: %w", err)
	}

	key, err := s.key(hashKey, sortKey)
	if err != nil {
		return nil, err
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       key,
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("dyndb: update failed: %w", err)
	}

	item, err := unmarshalItem[T](out.Attributes)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// buildUpdateExpression ordena os campos para que a expressão seja determinística
func buildUpdateExpression(fields map[string]any) (expression.Expression, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	update := expression.Set(expression.NameNoDotSplit(names[0]), expression.Value(fields[names[0]]))
	for _, name := range names[1:] {
		update = update.Set(expression.NameNoDotSplit(name), expression.Value(fields[name]))
	}

	return expression.NewBuilder().WithUpdate(update).Build()
}

func (s *dynamoStore[T]) key(hashKey, sortKey any) (map[string]types.AttributeValue, error) {
	hk, err := attr(s.cfg.HashKey, hashKey)
	if err != nil {
		return nil, err
	}
	key := map[string]types.AttributeValue{s.cfg.HashKey: hk}

	if s.cfg.SortKey != "" && sortKey != nil {
		sk, err := attr(s.cfg.SortKey, sortKey)
		if err != nil {
			return nil, err
		}
		key[s.cfg.SortKey] = sk
	}
	return key, nil
}

// attr converte o valor de um atributo de chave; chave nula não existe no DynamoDB.
func attr(name string, v any) (types.AttributeValue, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: %s is nil", ErrInvalidKey, name)
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidKey, name, err)
	}
	// chan e func são ignorados pelo encoder (nil, nil); ponteiro nulo vira NULL
	if _, isNull := av.(*types.AttributeValueMemberNULL); av == nil || isNull {
		return nil, fmt.Errorf("%w: %s has unsupported type %T", ErrInvalidKey, name, v)
	}
	return av, nil
}
