package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"cardledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Narrowing the client to an interface keeps the store mockable.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
//
// The ledger's two hierarchical paths map onto one transactions table with
// two global secondary indexes: every item carries gsi1pk = "TRANSACTIONS"
// for the global path and user_id for the per-owner path, both with
// created_at (epoch milliseconds) as the range key. A single conditional
// Put therefore makes the record visible under both paths atomically.
// Counters live in a separate table keyed by their path string.
type Store struct {
	Client                DynamoDBAPI
	TransactionsTableName string
	CountersTableName     string
}

// New creates a new Store.
func New(client DynamoDBAPI, transactionsTable, countersTable string) *Store {
	return &Store{
		Client:                client,
		TransactionsTableName: transactionsTable,
		CountersTableName:     countersTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	globalIndexName  = "gsi1pk-created_at-index"
	byUserIndexName  = "user_id-created_at-index"
	globalPartition  = "TRANSACTIONS"
	globalGSIKeyName = "gsi1pk"
)
