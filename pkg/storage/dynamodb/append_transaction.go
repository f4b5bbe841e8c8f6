package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"cardledger/pkg/models"
	"cardledger/pkg/storage"
)

// appendItem is the persisted shape of a transaction. It extends the
// domain model with the constant global-index partition key so that one
// Put lands the record under both the global and the per-owner index.
type appendItem struct {
	models.Transaction
	GSI1PK string `dynamodbav:"gsi1pk"`
}

// AppendTransaction writes the transaction record once, conditioned on
// the id not existing yet. The write is all-or-nothing: either the record
// becomes visible under both index paths or not at all.
func (s *Store) AppendTransaction(ctx context.Context, tx *models.Transaction) error {
	item := appendItem{Transaction: *tx, GSI1PK: globalPartition}

	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(s.TransactionsTableName),
					Item:                itemAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
		},
	}

	if _, err := s.Client.TransactWriteItems(ctx, input); err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return storage.ErrDuplicateTransaction
				}
			}
		}
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	return nil
}
