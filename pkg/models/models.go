package models

// TransactionStatus defines the possible outcomes of a card transaction.
// It is assigned once at creation and never changes.
type TransactionStatus string

const (
	APPROVED TransactionStatus = "approved"
	DECLINED TransactionStatus = "declined"
)

// declineThreshold is the amount above which a transaction is declined.
// The boundary value itself approves.
const declineThreshold = 1000

// DecideStatus applies the status-decision rule at write time.
func DecideStatus(amount float64) TransactionStatus {
	if amount > declineThreshold {
		return DECLINED
	}
	return APPROVED
}

// Card holds the display-only card details attached to a transaction.
// No validation is performed at this layer.
type Card struct {
	Last4          string `json:"last4" dynamodbav:"last4"`
	ExpirationDate string `json:"expirationDate" dynamodbav:"expiration_date"`
}

// Transaction represents the internal domain model for a ledger entry.
// It is immutable once written: for a given Id, CreatedAt and Status
// never change after creation.
type Transaction struct {
	Id             string            `json:"id" dynamodbav:"id"`
	UserId         string            `json:"userId" dynamodbav:"user_id"`
	CardholderName string            `json:"cardholderName" dynamodbav:"cardholder_name"`
	Card           Card              `json:"card" dynamodbav:"card"`
	Amount         float64           `json:"amount" dynamodbav:"amount"`
	Status         TransactionStatus `json:"status" dynamodbav:"status"`
	// CreatedAt is an epoch-millisecond timestamp stamped by the writer.
	// It is the primary sort key of the ledger.
	CreatedAt int64 `json:"createdAt" dynamodbav:"created_at"`
}

// Cursor is a keyset-pagination token: the ordering key of the last item
// of the previous page. A nil cursor means "first page". Viewers must
// round-trip it unmodified.
type Cursor struct {
	BeforeTs int64  `json:"beforeTs"`
	BeforeId string `json:"beforeId"`
}

// Page is one page of the ledger as returned by the query engine.
// Total and TotalPages are advisory; termination of a pagination loop
// must rely on the next page coming back empty, never on the counter.
type Page struct {
	Transactions []Transaction
	NextCursor   *Cursor
	PageSize     int
	Total        int64
	TotalPages   int
}
