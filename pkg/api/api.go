// Package api defines the wire types of the HTTP surface.
package api

// Card mirrors the display-only card details on the wire.
type Card struct {
	Last4          string `json:"last4"`
	ExpirationDate string `json:"expirationDate"`
}

// Transaction is the wire shape of a ledger entry.
type Transaction struct {
	Id             string  `json:"id"`
	UserId         string  `json:"userId"`
	CardholderName string  `json:"cardholderName"`
	Card           Card    `json:"card"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	CreatedAt      int64   `json:"createdAt"`
}

// NewTransaction is the create-request body.
type NewTransaction struct {
	CardholderName string  `json:"cardholderName"`
	Card           Card    `json:"card"`
	Amount         float64 `json:"amount"`
}

// Cursor is the opaque pagination token. Clients must round-trip it
// unmodified.
type Cursor struct {
	BeforeTs int64  `json:"beforeTs"`
	BeforeId string `json:"beforeId"`
}

// CreateTransactionResponse wraps the created record.
type CreateTransactionResponse struct {
	Transaction Transaction `json:"transaction"`
}

// ListTransactionsResponse is one page of the ledger.
type ListTransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	NextCursor   *Cursor       `json:"nextCursor"`
	PageSize     int           `json:"pageSize"`
	Total        int64         `json:"total"`
	TotalPages   int           `json:"totalPages"`
}

// ErrorResponse is the generic failure body. Internal fault detail never
// crosses the system boundary.
type ErrorResponse struct {
	Error string `json:"error"`
}
