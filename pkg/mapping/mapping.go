package mapping

import (
	"cardledger/pkg/api"
	"cardledger/pkg/models"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Id:             tx.Id,
		UserId:         tx.UserId,
		CardholderName: tx.CardholderName,
		Card: api.Card{
			Last4:          tx.Card.Last4,
			ExpirationDate: tx.Card.ExpirationDate,
		},
		Amount:    tx.Amount,
		Status:    string(tx.Status),
		CreatedAt: tx.CreatedAt,
	}
}

// ToApiTransactions converts a page of domain models.
func ToApiTransactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, len(txs))
	for i := range txs {
		out[i] = *ToApiTransaction(&txs[i])
	}
	return out
}

// ToApiCursor converts a domain cursor, preserving nil.
func ToApiCursor(cursor *models.Cursor) *api.Cursor {
	if cursor == nil {
		return nil
	}
	return &api.Cursor{BeforeTs: cursor.BeforeTs, BeforeId: cursor.BeforeId}
}

// ToDomainNewTransaction converts a create request to a partial domain
// model. Id, Status and CreatedAt are stamped by the writer, never taken
// from the client.
func ToDomainNewTransaction(newTx *api.NewTransaction, uid string) *models.Transaction {
	return &models.Transaction{
		UserId:         uid,
		CardholderName: newTx.CardholderName,
		Card: models.Card{
			Last4:          newTx.Card.Last4,
			ExpirationDate: newTx.Card.ExpirationDate,
		},
		Amount: newTx.Amount,
	}
}
