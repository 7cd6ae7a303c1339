package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/admin-api/dyndb"
	"github.com/raywall/admin-api/pkg/handlers"
	"github.com/raywall/admin-api/pkg/repository"
	"github.com/raywall/admin-api/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPage_FollowsCursor(t *testing.T) {
	var calls []*dynamodb.ScanInput
	client := &dyndb.MockDynamoClient{
		ScanFn: func(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			calls = append(calls, in)
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{
					Items: []map[string]types.AttributeValue{
						{"id": &types.AttributeValueMemberS{Value: "app-1"}},
					},
					LastEvaluatedKey: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: "app-1"},
					},
				}, nil
			}
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{
					{"id": &types.AttributeValueMemberS{Value: "app-2"}},
				},
			}, nil
		},
	}

	repo := repository.NewApplicationRepository(client, "applications", "id", 1)
	assert.Equal(t, "applications", repo.TableName())

	first, next, err := repo.ScanPage(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "app-1", first[0]["id"])
	require.NotEmpty(t, next)

	second, next, err := repo.ScanPage(context.Background(), next)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "app-2", second[0]["id"])
	assert.Empty(t, next)

	require.Len(t, calls, 2)
	assert.Equal(t, "applications", aws.ToString(calls[0].TableName))
	assert.Equal(t, int32(1), aws.ToInt32(calls[0].Limit))
	assert.Equal(t, "app-1", calls[1].ExclusiveStartKey["id"].(*types.AttributeValueMemberS).Value)
}

func TestUpdateItem(t *testing.T) {
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "app-1", in.Key["id"].(*types.AttributeValueMemberS).Value)
			return &dynamodb.UpdateItemOutput{
				Attributes: map[string]types.AttributeValue{
					"id":     &types.AttributeValueMemberS{Value: "app-1"},
					"status": &types.AttributeValueMemberS{Value: "approved"},
				},
			}, nil
		},
	}

	repo := repository.NewApplicationRepository(client, "applications", "id", 0)
	item, err := repo.UpdateItem(context.Background(), "app-1", map[string]any{"status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", item["status"])
}

func TestUpdateItem_Errors(t *testing.T) {
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("ConditionalCheckFailed")
		},
	}
	repo := repository.NewApplicationRepository(client, "applications", "id", 0)

	_, err := repo.UpdateItem(context.Background(), "app-1", map[string]any{"status": "x"})
	assert.ErrorContains(t, err, "ConditionalCheckFailed")

	_, err = repo.UpdateItem(context.Background(), "app-1", map[string]any{})
	assert.ErrorIs(t, err, dyndb.ErrEmptyUpdate)
}

func TestLargeNumbers_RoundTrip(t *testing.T) {
	var captured *dynamodb.UpdateItemInput
	client := &dyndb.MockDynamoClient{
		UpdateItemFn: func(ctx context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
			captured = in
			return &dynamodb.UpdateItemOutput{
				Attributes: map[string]types.AttributeValue{
					"id":     &types.AttributeValueMemberN{Value: "9007199254740993"},
					"amount": &types.AttributeValueMemberN{Value: "12345678901234567890"},
				},
			}, nil
		},
		ScanFn: func(ctx context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{
				Items: []map[string]types.AttributeValue{{
					"id":     &types.AttributeValueMemberN{Value: "9007199254740993"},
					"amount": &types.AttributeValueMemberN{Value: "12345678901234567890"},
				}},
			}, nil
		},
	}
	repo := repository.NewApplicationRepository(client, "applications", "id", 10)

	body := `{"id": 9007199254740993, "amount": 12345678901234567890}`
	resp := handlers.NewApplicationHandler(repo, nil).UpdateApplication(context.Background(), router.Request{
		Method: "POST",
		Path:   "/api/update-application",
		Body:   &body,
	})
	require.Equal(t, 200, resp.StatusCode, resp.Body)

	require.NotNil(t, captured)
	assert.Equal(t, "9007199254740993", captured.Key["id"].(*types.AttributeValueMemberN).Value)
	var values []string
	for _, v := range captured.ExpressionAttributeValues {
		if n, ok := v.(*types.AttributeValueMemberN); ok {
			values = append(values, n.Value)
		}
	}
	assert.Equal(t, []string{"12345678901234567890"}, values)
	assert.Contains(t, resp.Body, `"id":9007199254740993`)
	assert.Contains(t, resp.Body, `"amount":12345678901234567890`)

	resp = handlers.NewDataHandler(repo, "", nil).GetAllData(context.Background(), router.Request{})
	require.Equal(t, 200, resp.StatusCode, resp.Body)
	assert.Contains(t, resp.Body, `"id":9007199254740993`)
	assert.Contains(t, resp.Body, `"amount":12345678901234567890`)
}
