package dynamodb

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"cardledger/pkg/models"
	"cardledger/pkg/scope"
)

// scanQuery builds the index query for a scope: the global GSI for admin
// scopes, the per-owner GSI otherwise. The bound, when present, is
// inclusive — the range primitive only knows about created_at, so callers
// that paginate must tie-break on (created_at, id) themselves.
func (s *Store) scanQuery(sc scope.Scope, beforeTs *int64) *dynamodb.QueryInput {
	input := &dynamodb.QueryInput{
		TableName:        aws.String(s.TransactionsTableName),
		ScanIndexForward: aws.Bool(false), // newest first
	}

	keyCond := "user_id = :pk"
	pk := &types.AttributeValueMemberS{Value: sc.UserId}
	input.IndexName = aws.String(byUserIndexName)
	if sc.Admin {
		keyCond = globalGSIKeyName + " = :pk"
		pk = &types.AttributeValueMemberS{Value: globalPartition}
		input.IndexName = aws.String(globalIndexName)
	}

	values := map[string]types.AttributeValue{":pk": pk}
	if beforeTs != nil {
		keyCond += " AND created_at <= :beforeTs"
		values[":beforeTs"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(*beforeTs, 10)}
	}

	input.KeyConditionExpression = aws.String(keyCond)
	input.ExpressionAttributeValues = values
	return input
}

// ScanBefore returns up to limit rows of the scope's index, newest first,
// optionally bounded above (inclusive) by beforeTs.
func (s *Store) ScanBefore(ctx context.Context, sc scope.Scope, beforeTs *int64, limit int32) ([]models.Transaction, error) {
	input := s.scanQuery(sc, beforeTs)
	input.Limit = aws.Int32(limit)

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return transactions, nil
}

// ListRecent returns the last lastN rows of the scope's index. When lastN
// is zero it walks the whole index, following LastEvaluatedKey until the
// store reports exhaustion.
func (s *Store) ListRecent(ctx context.Context, sc scope.Scope, lastN int32) ([]models.Transaction, error) {
	if lastN > 0 {
		return s.ScanBefore(ctx, sc, nil, lastN)
	}

	var transactions []models.Transaction
	input := s.scanQuery(sc, nil)
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query transactions: %w", err)
		}

		var page []models.Transaction
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
		}
		transactions = append(transactions, page...)

		if result.LastEvaluatedKey == nil {
			return transactions, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}
