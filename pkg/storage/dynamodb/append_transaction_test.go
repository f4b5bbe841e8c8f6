package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cardledger/pkg/models"
	"cardledger/pkg/storage"
	"cardledger/pkg/storage/dynamodb/mocks"
)

func TestAppendTransaction(t *testing.T) {
	tx := &models.Transaction{
		Id:             "tx-1",
		UserId:         "user-1",
		CardholderName: "John Doe",
		Card:           models.Card{Last4: "1234", ExpirationDate: "12/25"},
		Amount:         100.01,
		Status:         models.APPROVED,
		CreatedAt:      1700000000000,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			if len(input.TransactItems) != 1 || input.TransactItems[0].Put == nil {
				return false
			}
			put := input.TransactItems[0].Put
			gsi, hasGSI := put.Item["gsi1pk"].(*types.AttributeValueMemberS)
			return *put.TableName == "transactions" &&
				*put.ConditionExpression == "attribute_not_exists(id)" &&
				hasGSI && gsi.Value == globalPartition
		})).Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.AppendTransaction(context.Background(), tx)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		cancelled := &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{
				{Code: aws.String("ConditionalCheckFailed")},
			},
		}
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, cancelled)

		err := store.AppendTransaction(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrDuplicateTransaction)
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, "transactions", "counters")

		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))

		err := store.AppendTransaction(context.Background(), tx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to append transaction")
		mockClient.AssertExpectations(t)
	})
}
