package realtime

import (
	"context"
	"net/http"
	"time"

	"child-wallet/pkg/logger"

	ws "github.com/coder/websocket"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
)

// Client is one WebSocket connection watching a single child.
type Client struct {
	hub     *Hub
	conn    *ws.Conn
	childID string
	send    chan []byte
}

// NewClient creates a Client tied to the given hub and connection.
func NewClient(hub *Hub, conn *ws.Conn, childID string) *Client {
	return &Client{
		hub:     hub,
		conn:    conn,
		childID: childID,
		send:    make(chan []byte, sendBufferSize),
	}
}

// Run registers the client, starts the write pump, and runs the read pump.
// It blocks until the connection is closed, then unregisters.
func (c *Client) Run(ctx context.Context) {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writePump(ctx)
	c.readPump(ctx)
}

// readPump discards inbound messages; the feed is server-to-client only.
func (c *Client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Serve upgrades the request and streams childID's events until the peer
// disconnects. Authorization happens before Serve is called.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, childID string, originPatterns []string) {
	log := logger.ForChild(h.log, childID)
	conn, err := ws.Accept(w, r, &ws.AcceptOptions{OriginPatterns: originPatterns})
	if err != nil {
		log.Warn().Err(err).Msg("realtime: accept")
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	log.Debug().Msg("realtime: client connected")
	NewClient(h, conn, childID).Run(r.Context())
	conn.Close(ws.StatusNormalClosure, "") //nolint:errcheck
	log.Debug().Msg("realtime: client disconnected")
}
