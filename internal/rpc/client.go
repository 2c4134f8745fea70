package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/quoteboard/internal/models"
	"github.com/thenoetrevino/quoteboard/internal/remote"
)

// DefaultDialTimeout bounds a single connection attempt
const DefaultDialTimeout = 2 * time.Second

// Client is a Remote backed by the daemon. Calls from any goroutine share
// one connection; a reader goroutine routes responses back by request ID.
type Client struct {
	socketPath  string
	dialTimeout time.Duration
	logger      *slog.Logger

	mu      sync.Mutex // protects conn, enc, pending, closed
	conn    net.Conn
	enc     *json.Encoder
	pending map[string]chan Response
	closed  bool
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithDialTimeout overrides DefaultDialTimeout
func WithDialTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.dialTimeout = d }
}

// WithClientLogger sets the logger, slog.Default when unset
func WithClientLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a client for the daemon at socketPath. No connection is
// made until the first call.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	c := &Client{
		socketPath:  socketPath,
		dialTimeout: DefaultDialTimeout,
		pending:     make(map[string]chan Response),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// FetchColumnPage implements remote.Fetcher
func (c *Client) FetchColumnPage(ctx context.Context, req models.PageRequest) (*models.Page, error) {
	resp, err := c.call(ctx, Request{Type: TypeFetchPage, Fetch: &req})
	if err != nil {
		return nil, err
	}
	if resp.Page == nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", req.Status, req.Page, ErrBadRequest)
	}
	return resp.Page, nil
}

// UpdateStatus implements remote.Mutator
func (c *Client) UpdateStatus(ctx context.Context, u models.StatusUpdate) (*models.StatusUpdateResult, error) {
	resp, err := c.call(ctx, Request{Type: TypeUpdateStatus, Update: &u})
	if err != nil {
		return nil, err
	}
	if resp.Update == nil {
		return nil, fmt.Errorf("update %s: %w", u.ID, ErrBadRequest)
	}
	return resp.Update, nil
}

// Ping round-trips to the daemon and returns its metrics
func (c *Client) Ping(ctx context.Context) (MetricsSnapshot, error) {
	resp, err := c.call(ctx, Request{Type: TypePing})
	if err != nil {
		return MetricsSnapshot{}, err
	}
	if resp.Metrics == nil {
		return MetricsSnapshot{}, nil
	}
	return *resp.Metrics, nil
}

func (c *Client) call(ctx context.Context, req Request) (Response, error) {
	req.Version = ProtocolVersion
	req.ID = uuid.NewString()
	ch := make(chan Response, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Response{}, ErrClientClosed
	}
	if c.conn == nil {
		c.mu.Unlock()
		conn, err := c.dial(ctx)
		if err != nil {
			return Response{}, ClassifyError(err)
		}
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = conn.Close()
			return Response{}, ErrClientClosed
		}
		c.attachLocked(conn)
	}
	c.pending[req.ID] = ch
	if err := c.enc.Encode(req); err != nil {
		delete(c.pending, req.ID)
		c.dropLocked(c.conn)
		c.mu.Unlock()
		return Response{}, fmt.Errorf("send %s: %w", req.Type, ErrConnectionLost)
	}
	c.mu.Unlock()

	select {
	case resp, ok := <-ch:
		if !ok {
			return Response{}, fmt.Errorf("%s: %w", req.Type, ErrConnectionLost)
		}
		if resp.Error != nil {
			return Response{}, resp.Error
		}
		if resp.Version != ProtocolVersion {
			return Response{}, fmt.Errorf("%w: got %d want %d", ErrVersion, resp.Version, ProtocolVersion)
		}
		return resp, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
		return Response{}, ctx.Err()
	}
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	dialer := net.Dialer{Timeout: c.dialTimeout}
	return dialer.DialContext(ctx, "unix", c.socketPath)
}

// attachLocked makes conn the shared connection. If another call connected
// while this one was dialing, conn is closed and the existing one kept.
func (c *Client) attachLocked(conn net.Conn) {
	if c.conn != nil {
		_ = conn.Close()
		return
	}
	c.conn = conn
	c.enc = json.NewEncoder(conn)
	c.logger.Debug("connected to daemon", "socket", c.socketPath)
	go c.readLoop(conn)
}

// dropLocked closes conn and fails every pending call, if conn is still
// the current connection
func (c *Client) dropLocked(conn net.Conn) {
	if c.conn != conn || conn == nil {
		return
	}
	_ = conn.Close()
	c.conn = nil
	c.enc = nil
	for id, ch := range c.pending {
		close(ch)
		delete(c.pending, id)
	}
}

func (c *Client) readLoop(conn net.Conn) {
	dec := json.NewDecoder(conn)
	for {
		var resp Response
		if err := dec.Decode(&resp); err != nil {
			c.mu.Lock()
			if c.conn == conn && !c.closed {
				c.logger.Warn("daemon connection lost", "error", err)
			}
			c.dropLocked(conn)
			c.mu.Unlock()
			return
		}

		c.mu.Lock()
		ch, ok := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()

		if ok {
			ch <- resp
		}
	}
}

// Close shuts the connection and fails pending calls. Further calls return
// ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.dropLocked(c.conn)
	return nil
}

var _ remote.Remote = (*Client)(nil)
