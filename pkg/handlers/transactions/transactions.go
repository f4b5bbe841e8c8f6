package transactions

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"cardledger/pkg/api"
	"cardledger/pkg/auth"
	"cardledger/pkg/events"
	"cardledger/pkg/mapping"
	"cardledger/pkg/models"
	"cardledger/pkg/query"
	"cardledger/pkg/scope"
	"cardledger/pkg/storage"
)

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Pager     query.TransactionPager
	Appender  storage.TransactionAppender
	Counters  storage.CounterWriter
	Publisher events.Publisher
	Logger    *slog.Logger
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(pager query.TransactionPager, appender storage.TransactionAppender, counters storage.CounterWriter, publisher events.Publisher, logger *slog.Logger) *TransactionsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionsHandler{
		Pager:     pager,
		Appender:  appender,
		Counters:  counters,
		Publisher: publisher,
		Logger:    logger,
	}
}

// CreateTransaction appends a new entry to the ledger: the record becomes
// visible under the global and the per-owner path, both scope counters
// are bumped, and an added event goes out on the live stream.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		auth.Unauthorized(w)
		return
	}

	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := uuid.NewV7()
	if err != nil {
		h.Logger.Error("failed to generate transaction id", "error", err)
		respondInternalError(w)
		return
	}

	tx := mapping.ToDomainNewTransaction(&newTx, identity.UID)
	tx.Id = id.String()
	tx.Status = models.DecideStatus(newTx.Amount)
	tx.CreatedAt = time.Now().UnixMilli()

	if err := h.Appender.AppendTransaction(r.Context(), tx); err != nil {
		h.Logger.Error("failed to append transaction", "error", err)
		respondInternalError(w)
		return
	}

	// The record is committed at this point. Counter increments are
	// individually retryable and not transactional with the data write;
	// a failure here leaves the advisory counters under-counted until
	// the next successful write.
	ownerScope := scope.Resolve(identity.UID, nil)
	for _, counterPath := range []string{scope.GlobalCounterPath, ownerScope.CounterPath} {
		if err := h.Counters.IncrementCounter(r.Context(), counterPath); err != nil {
			h.Logger.Error("failed to increment counter", "path", counterPath, "error", err)
			respondInternalError(w)
			return
		}
	}

	h.publishAdded(r.Context(), tx, ownerScope.DataPath)

	respondJSON(w, http.StatusCreated, api.CreateTransactionResponse{
		Transaction: *mapping.ToApiTransaction(tx),
	})
}

// publishAdded fans the new entry out to both subscription paths.
// Best-effort: a viewer that misses the event still sees the record on
// its next page fetch.
func (h *TransactionsHandler) publishAdded(ctx context.Context, tx *models.Transaction, ownerPath string) {
	event := events.Event{Kind: events.KindAdded, Transaction: *tx}
	for _, path := range []string{scope.GlobalDataPath, ownerPath} {
		if err := h.Publisher.Publish(ctx, path, event); err != nil {
			h.Logger.Error("failed to publish live event", "path", path, "error", err)
		}
	}
}

// ListTransactions serves one keyset-paginated page of the caller's
// scope, newest first.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		auth.Unauthorized(w)
		return
	}

	sc := scope.Resolve(identity.UID, identity.Roles)
	limit := parseLimit(r.URL.Query().Get("limit"))
	cursor := parseCursor(r.URL.Query().Get("beforeTs"), r.URL.Query().Get("beforeId"))

	page, err := h.Pager.Page(r.Context(), sc, limit, cursor)
	if err != nil {
		h.Logger.Error("failed to serve transactions page", "error", err)
		respondInternalError(w)
		return
	}

	respondJSON(w, http.StatusOK, api.ListTransactionsResponse{
		Transactions: mapping.ToApiTransactions(page.Transactions),
		NextCursor:   mapping.ToApiCursor(page.NextCursor),
		PageSize:     page.PageSize,
		Total:        page.Total,
		TotalPages:   page.TotalPages,
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return query.DefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return query.DefaultLimit
	}
	return query.ClampLimit(limit)
}

// parseCursor recovers from malformed cursor values by treating the
// request as a first page; a bad cursor is never an error.
func parseCursor(rawTs, rawId string) *models.Cursor {
	if rawTs == "" {
		return nil
	}
	beforeTs, err := strconv.ParseInt(rawTs, 10, 64)
	if err != nil {
		return nil
	}
	return &models.Cursor{BeforeTs: beforeTs, BeforeId: rawId}
}
