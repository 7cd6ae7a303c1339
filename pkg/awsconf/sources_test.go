package awsconf

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3 struct {
	mock.Mock
}

func (m *MockS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

type stubDynamo struct {
	item map[string]types.AttributeValue
	in   *dynamodb.GetItemInput
}

func (s *stubDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	s.in = params
	return &dynamodb.GetItemOutput{Item: s.item}, nil
}

type stubSecrets struct {
	value string
	err   error
}

func (s *stubSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(s.value)}, nil
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestFetchS3Object(t *testing.T) {
	client := new(MockS3)
	client.On("GetObject", "config-bucket", "admin/config.yaml").Return(&s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader("service:\n  name: admin-api\n")),
	}, nil)
	client.On("GetObject", "config-bucket", "missing.yaml").Return(nil, errors.New("NoSuchKey"))

	data, err := FetchS3Object(context.Background(), client, mustURL(t, "s3://config-bucket/admin/config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "admin-api")

	_, err = FetchS3Object(context.Background(), client, mustURL(t, "s3://config-bucket/missing.yaml"))
	assert.ErrorContains(t, err, "NoSuchKey")

	_, err = FetchS3Object(context.Background(), client, mustURL(t, "s3://config-bucket"))
	assert.ErrorContains(t, err, "URL S3 inválida")
}

func TestFetchDynamoItem(t *testing.T) {
	client := &stubDynamo{item: map[string]types.AttributeValue{
		"service": &types.AttributeValueMemberS{Value: "admin-api"},
		"yaml":    &types.AttributeValueMemberS{Value: "table:\n  name: x\n"},
	}}

	data, err := FetchDynamoItem(context.Background(), client, mustURL(t, "dynamodb://configs/admin-api?col=yaml&pk=service"))
	require.NoError(t, err)
	assert.Equal(t, "table:\n  name: x\n", string(data))
	assert.Equal(t, "configs", aws.ToString(client.in.TableName))
	assert.Equal(t, "admin-api", client.in.Key["service"].(*types.AttributeValueMemberS).Value)

	// coluna padrão "config" não existe no item
	_, err = FetchDynamoItem(context.Background(), client, mustURL(t, "dynamodb://configs/admin-api?pk=service"))
	assert.ErrorContains(t, err, "coluna 'config'")

	_, err = FetchDynamoItem(context.Background(), &stubDynamo{}, mustURL(t, "dynamodb://configs/admin-api"))
	assert.ErrorContains(t, err, "item não encontrado")
}

func TestResolveSecret(t *testing.T) {
	ctx := context.Background()

	val, err := ResolveSecret(ctx, &stubSecrets{value: "plain"}, "admin-api")
	require.NoError(t, err)
	assert.Equal(t, "plain", val)

	json := &stubSecrets{value: `{"rule":"has(input.status)","max":3}`}
	val, err = ResolveSecret(ctx, json, "admin-api#rule")
	require.NoError(t, err)
	assert.Equal(t, "has(input.status)", val)

	val, err = ResolveSecret(ctx, json, "admin-api#max")
	require.NoError(t, err)
	assert.Equal(t, "3", val)

	_, err = ResolveSecret(ctx, json, "admin-api#missing")
	assert.ErrorContains(t, err, "campo 'missing'")

	_, err = ResolveSecret(ctx, &stubSecrets{value: "plain"}, "admin-api#rule")
	assert.ErrorContains(t, err, "não é JSON")

	_, err = ResolveSecret(ctx, &stubSecrets{err: errors.New("ResourceNotFound")}, "admin-api")
	assert.ErrorContains(t, err, "ResourceNotFound")
}
