package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// IncrementCounter adds 1 to the counter stored under path. ADD is the
// store's atomic read-modify-write primitive; it also creates the item on
// first use, so counters never need seeding.
func (s *Store) IncrementCounter(ctx context.Context, path string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.CountersTableName),
		Key: map[string]types.AttributeValue{
			"path": &types.AttributeValueMemberS{Value: path},
		},
		UpdateExpression: aws.String("ADD #count :one"),
		ExpressionAttributeNames: map[string]string{
			"#count": "count",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to increment counter %s: %w", path, err)
	}

	return nil
}

// GetCounter reads the counter stored under path, or 0 when the counter
// has never been written.
func (s *Store) GetCounter(ctx context.Context, path string) (int64, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.CountersTableName),
		Key: map[string]types.AttributeValue{
			"path": &types.AttributeValueMemberS{Value: path},
		},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to get counter %s: %w", path, err)
	}
	if result.Item == nil {
		return 0, nil
	}

	countAV, ok := result.Item["count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter %s has a non-numeric value", path)
	}

	count, err := strconv.ParseInt(countAV.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse counter %s: %w", path, err)
	}

	return count, nil
}
