// Package live exposes the merged live view over a websocket. Each
// connection owns one session; the socket receives the full sorted view
// on connect and again after every change.
package live

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"cardledger/pkg/api"
	"cardledger/pkg/auth"
	"cardledger/pkg/events"
	livesession "cardledger/pkg/live"
	"cardledger/pkg/mapping"
	"cardledger/pkg/models"
	"cardledger/pkg/query"
	"cardledger/pkg/scope"
)

const writeTimeout = 10 * time.Second

// ViewFrame is one websocket message: the complete current view.
type ViewFrame struct {
	Transactions []api.Transaction `json:"transactions"`
}

// LiveHandler upgrades authenticated requests to a live-view stream.
type LiveHandler struct {
	Pager    query.TransactionPager
	Stream   events.Stream
	Logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(pager query.TransactionPager, stream events.Stream, logger *slog.Logger) *LiveHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LiveHandler{
		Pager:  pager,
		Stream: stream,
		Logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeLiveView handles GET /api/transactions/live.
func (h *LiveHandler) ServeLiveView(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		auth.Unauthorized(w)
		return
	}
	sc := scope.Resolve(identity.UID, identity.Roles)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the failure response.
		h.Logger.Error("failed to upgrade live view connection", "error", err)
		return
	}
	defer conn.Close()

	session, err := livesession.Open(r.Context(), h.Pager, h.Stream, sc, query.DefaultLimit)
	if err != nil {
		h.Logger.Error("failed to open live session", "error", err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "session unavailable"),
			time.Now().Add(writeTimeout))
		return
	}
	defer session.Close()

	if err := h.writeView(conn, session.Snapshot()); err != nil {
		return
	}

	// The read pump discards client frames; its only job is noticing the
	// peer going away.
	disconnected := make(chan struct{})
	go func() {
		defer close(disconnected)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case view := <-session.Updates():
			if err := h.writeView(conn, view); err != nil {
				return
			}
		case <-disconnected:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func (h *LiveHandler) writeView(conn *websocket.Conn, view []models.Transaction) error {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteJSON(ViewFrame{Transactions: mapping.ToApiTransactions(view)}); err != nil {
		h.Logger.Error("failed to write live view frame", "error", err)
		return err
	}
	return nil
}
