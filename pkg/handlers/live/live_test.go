package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardledger/pkg/auth"
	"cardledger/pkg/events"
	"cardledger/pkg/models"
	"cardledger/pkg/scope"
)

type fakePager struct {
	page *models.Page
}

func (f *fakePager) Page(ctx context.Context, sc scope.Scope, limit int, cursor *models.Cursor) (*models.Page, error) {
	return f.page, nil
}

type fakeStream struct {
	source chan events.Event
}

func (f *fakeStream) Subscribe(ctx context.Context, sc scope.Scope, lastN int) (<-chan events.Event, error) {
	out := make(chan events.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-f.source:
				if !ok {
					return
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func newTestServer(t *testing.T, h *LiveHandler, identity *auth.Identity) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity != nil {
			r = r.WithContext(auth.WithIdentity(r.Context(), *identity))
		}
		h.ServeLiveView(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) ViewFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame ViewFrame
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestServeLiveView_SnapshotThenDeltas(t *testing.T) {
	seed := models.Transaction{Id: "tx-1", UserId: "user-1", Amount: 10, Status: models.APPROVED, CreatedAt: 1000}
	pager := &fakePager{page: &models.Page{Transactions: []models.Transaction{seed}, PageSize: 20, TotalPages: 1}}
	stream := &fakeStream{source: make(chan events.Event, 1)}

	h := NewLiveHandler(pager, stream, nil)
	server := newTestServer(t, h, &auth.Identity{UID: "user-1"})
	conn := dial(t, server)

	first := readFrame(t, conn)
	require.Len(t, first.Transactions, 1)
	assert.Equal(t, "tx-1", first.Transactions[0].Id)

	// A stream report replaces the view wholesale once it is non-empty.
	stream.source <- events.Event{
		Kind:        events.KindAdded,
		Transaction: models.Transaction{Id: "tx-2", UserId: "user-1", Amount: 20, Status: models.APPROVED, CreatedAt: 2000},
	}

	second := readFrame(t, conn)
	require.Len(t, second.Transactions, 1)
	assert.Equal(t, "tx-2", second.Transactions[0].Id)
}

func TestServeLiveView_NoIdentity(t *testing.T) {
	pager := &fakePager{page: &models.Page{PageSize: 20, TotalPages: 1}}
	stream := &fakeStream{source: make(chan events.Event)}

	h := NewLiveHandler(pager, stream, nil)
	server := newTestServer(t, h, nil)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
