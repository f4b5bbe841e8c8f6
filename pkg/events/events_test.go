package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardledger/pkg/models"
)

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		Kind: KindAdded,
		Transaction: models.Transaction{
			Id:        "tx-1",
			UserId:    "user-1",
			Amount:    99.90,
			Status:    models.APPROVED,
			CreatedAt: 1700000000000,
		},
	}

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, event, decoded)
}

func TestNoOpPublisher(t *testing.T) {
	var p NoOpPublisher
	assert.NoError(t, p.Publish(context.Background(), "transactions", Event{Kind: KindRemoved}))
}
