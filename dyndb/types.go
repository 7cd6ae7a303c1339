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
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	// ErrEmptyUpdate é retornado quando Update recebe um conjunto vazio de campos.
	ErrEmptyUpdate = errors.New("dyndb: update expression has no fields")
	// ErrInvalidKey indica um valor de chave que não pode ser convertido em atributo.
	ErrInvalidKey = errors.New("dyndb: invalid key")
	// ErrInvalidCursor indica um token de paginação que não foi gerado por este pacote.
	ErrInvalidCursor = errors.New("dyndb: invalid pagination cursor")
)

// DynamoDBClient abstrai as operações do SDK usadas pelo Store.
//
// *dynamodb.Client satisfaz a interface; MockDynamoClient é usado nos testes.
type DynamoDBClient interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Store é a interface genérica sobre uma tabela DynamoDB.
//
// T é o tipo Go de cada item (struct com tags dynamodbav ou map[string]any).
type Store[T any] interface {
	// Scan inicia um ScanBuilder[T] para leitura paginada da tabela.
	Scan() *ScanBuilder[T]
	// Update aplica um SET para cada campo e devolve o item completo após a escrita.
	Update(ctx context.Context, hashKey, sortKey any, fields map[string]any) (*T, error)
}

// TableConfig contém a configuração da tabela associada ao Store.
type TableConfig[T any] struct {
	TableName string `env:"DYNAMODB_TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
	SortKey   string `env:"DYNAMODB_SORT_KEY"` // opcional
}
