package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"child-wallet/internal/core/domain"

	ws "github.com/coder/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockClient(hub *Hub, childID string) *Client {
	return &Client{hub: hub, childID: childID, send: make(chan []byte, sendBufferSize)}
}

func event(childID, entity, action string) domain.WalletEvent {
	return domain.NewWalletEvent(childID, entity, action, "GOWNER", 1704067200, nil)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	a1, a2, b := mockClient(hub, "child-a"), mockClient(hub, "child-a"), mockClient(hub, "child-b")
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(b)

	assert.Equal(t, 2, hub.ClientCount("child-a"))
	assert.Equal(t, 1, hub.ClientCount("child-b"))

	hub.Unregister(a1)
	hub.Unregister(a1)
	assert.Equal(t, 1, hub.ClientCount("child-a"))

	hub.Unregister(a2)
	hub.Unregister(b)
	assert.Zero(t, hub.ClientCount("child-a"))
	assert.Empty(t, hub.rooms)
}

func TestHub_PublishIsScopedToChild(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	a, b := mockClient(hub, "child-a"), mockClient(hub, "child-b")
	hub.Register(a)
	hub.Register(b)

	hub.Publish(event("child-a", "investment", "created"))

	select {
	case data := <-a.send:
		var got domain.WalletEvent
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "investment_created", got.Type)
		assert.Equal(t, "child-a", got.ChildID)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}

	select {
	case <-b.send:
		t.Fatal("event leaked to another child")
	default:
	}
}

func TestHub_FullBufferDrops(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c := mockClient(hub, "child-a")
	hub.Register(c)

	for range sendBufferSize + 3 {
		hub.Publish(event("child-a", "payment", "created"))
	}
	assert.Len(t, c.send, sendBufferSize)
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	var wg sync.WaitGroup

	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			childID := "child-" + string(rune('a'+i%3))
			c := mockClient(hub, childID)
			hub.Register(c)
			hub.Publish(event(childID, "plan", "executed"))
			hub.Unregister(c)
		}()
	}
	wg.Wait()

	assert.Empty(t, hub.rooms)
}

func TestHub_ServeStreamsEvents(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, "child-a", nil)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	conn, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.CloseNow() //nolint:errcheck

	require.Eventually(t, func() bool { return hub.ClientCount("child-a") == 1 }, time.Second, 5*time.Millisecond)

	hub.Publish(event("child-b", "investment", "created"))
	hub.Publish(event("child-a", "emergency_pause", "engaged"))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var got domain.WalletEvent
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "emergency_pause_engaged", got.Type)

	require.NoError(t, conn.Close(ws.StatusNormalClosure, ""))
	require.Eventually(t, func() bool { return hub.ClientCount("child-a") == 0 }, time.Second, 5*time.Millisecond)
}
