package awsconf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// LoadBootstrap carrega uma configuração AWS padrão, fora do singleton.
// Usada apenas para ler a própria configuração do serviço (S3, DynamoDB, SSM,
// Secrets Manager), antes de existirem timeouts e retries configurados.
func LoadBootstrap(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}

// FetchS3Object lê s3://bucket/key.
func FetchS3Object(ctx context.Context, client S3Downloader, u *url.URL) ([]byte, error) {
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 inválida: %s", u)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao baixar do S3: %w", err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// FetchDynamoItem lê o YAML salvo em uma coluna de um item:
// dynamodb://tabela/chave?col=config&pk=id
func FetchDynamoItem(ctx context.Context, client DynamoGetter, u *url.URL) ([]byte, error) {
	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config"
	}
	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("erro no DynamoDB GetItem: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("item não encontrado no DynamoDB: %s/%s", tableName, pkValue)
	}

	var item map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, err
	}
	content, ok := item[colName].(string)
	if !ok || content == "" {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}
	return []byte(content), nil
}

// ResolveSecret lê um segredo. "nome#campo" extrai um campo de um segredo JSON.
func ResolveSecret(ctx context.Context, client SecretsClient, ref string) (string, error) {
	secretID, field, hasField := strings.Cut(ref, "#")

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", fmt.Errorf("erro no SecretsManager (%s): %w", secretID, err)
	}
	val := aws.ToString(out.SecretString)
	if !hasField {
		return val, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return "", fmt.Errorf("segredo %s não é JSON: %w", secretID, err)
	}
	v, ok := data[field]
	if !ok {
		return "", fmt.Errorf("campo '%s' ausente no segredo %s", field, secretID)
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprintf("%v", v), nil
}
