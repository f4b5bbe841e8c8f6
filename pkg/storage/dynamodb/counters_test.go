package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cardledger/pkg/storage/dynamodb/mocks"
)

func TestIncrementCounter(t *testing.T) {
	t.Run("Uses Atomic ADD", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			key, hasKey := input.Key["path"].(*types.AttributeValueMemberS)
			return *input.TableName == "counters" &&
				*input.UpdateExpression == "ADD #count :one" &&
				hasKey && key.Value == "meta/transactions/count"
		})).Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.IncrementCounter(context.Background(), "meta/transactions/count")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, errors.New("update failed"))

		err := store.IncrementCounter(context.Background(), "meta/transactions/count")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to increment counter")
		mockClient.AssertExpectations(t)
	})
}

func TestGetCounter(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{
			Item: map[string]types.AttributeValue{
				"path":  &types.AttributeValueMemberS{Value: "meta/transactions/count"},
				"count": &types.AttributeValueMemberN{Value: "42"},
			},
		}, nil)

		count, err := store.GetCounter(context.Background(), "meta/transactions/count")

		assert.NoError(t, err)
		assert.Equal(t, int64(42), count)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Counter Reads As Zero", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		count, err := store.GetCounter(context.Background(), "meta/transactions_by_user/user-1/count")

		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("get failed"))

		_, err := store.GetCounter(context.Background(), "meta/transactions/count")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get counter")
		mockClient.AssertExpectations(t)
	})
}
