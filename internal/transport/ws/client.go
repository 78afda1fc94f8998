package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"brainhub/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4096

	// Feed messages a client may fall behind by before it is dropped
	sendBufferSize = 64
)

// errSlowClient is returned by Send when the client's queue is full
var errSlowClient = errors.New("feed client is not keeping up")

// Client is one live feed subscriber. Each queued message is written as its
// own text frame.
type Client struct {
	conn      *websocket.Conn
	hub       *Hub
	id        string
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// NewClient creates a feed client for conn
func NewClient(conn *websocket.Conn, hub *Hub, id string, logger *slog.Logger) *Client {
	return &Client{
		conn:   conn,
		hub:    hub,
		id:     id,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// GetID returns the client ID
func (c *Client) GetID() string {
	return c.id
}

// Send queues msg for delivery. A client whose queue is full has missed part
// of the feed, so it is disconnected and errSlowClient is returned.
func (c *Client) Send(msg *ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return nil
	default:
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.Close()
		return errSlowClient
	}
}

// Close closes the connection. It is safe to call more than once.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

// Run starts the write pump and reads until the peer goes away
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c.id)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "clientID", c.id, "error", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgGetLeaderboard:
		c.handleGetLeaderboard(msg.Payload)
	case MsgPing:
		c.Send(NewServerMessage(MsgPong, nil))
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

func (c *Client) handleGetLeaderboard(raw json.RawMessage) {
	var req GetLeaderboardPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &req); err != nil {
			c.sendError(ErrCodeInvalidMessage, "Invalid get_leaderboard payload")
			return
		}
	}
	if req.Board == "" {
		req.Board = string(domain.BoardDaily)
	}
	if req.Limit <= 0 {
		req.Limit = defaultLimit
	}

	board, err := domain.ParseBoard(req.Board)
	if err != nil {
		c.sendError(ErrCodeUnknownBoard, "Unknown leaderboard")
		return
	}

	c.Send(NewServerMessage(MsgLeaderboard, &LeaderboardPayload{
		Board:   board,
		Game:    req.Game,
		Entries: c.hub.leaderboard.GetTopPlayers(board, req.Limit, req.Game),
	}))
}

func (c *Client) sendConnected() {
	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{ClientID: c.id}))
}

func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{Code: code, Message: message}))
}
