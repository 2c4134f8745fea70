package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/thenoetrevino/quoteboard/internal/remote"
	"github.com/thenoetrevino/quoteboard/internal/rpc"
)

// DefaultRequestTimeout bounds a single remote call made on behalf of a client
const DefaultRequestTimeout = 30 * time.Second

// client represents a connected client to the daemon
type client struct {
	conn      net.Conn
	send      chan rpc.Response
	done      chan struct{}
	closeOnce sync.Once // Ensures done is closed only once
}

func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

// Server serves a Remote over a unix socket
type Server struct {
	socketPath       string
	listener         net.Listener
	remote           remote.Remote
	clients          map[*client]bool
	mu               sync.RWMutex
	ctx              context.Context
	cancel           context.CancelFunc
	metrics          *Metrics
	clientBufferSize int
	requestTimeout   time.Duration
	logger           *slog.Logger
	inflight         sync.WaitGroup
	shutdownOnce     sync.Once
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the server logger, slog.Default when unset
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithRequestTimeout overrides DefaultRequestTimeout
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.requestTimeout = d }
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates a server for r listening on socketPath
func NewServer(socketPath string, r remote.Remote, opts ...Option) (*Server, error) {
	if r == nil {
		return nil, errors.New("daemon: nil remote")
	}

	if dir := filepath.Dir(socketPath); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		socketPath:       socketPath,
		listener:         listener,
		remote:           r,
		clients:          make(map[*client]bool),
		ctx:              ctx,
		cancel:           cancel,
		metrics:          NewMetrics(),
		clientBufferSize: getEnvInt("QUOTEBOARD_DAEMON_CLIENT_BUFFER", 16),
		requestTimeout:   DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// Metrics exposes the server counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start accepts clients until ctx is cancelled or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "socket", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-combinedCtx.Done():
		}
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	var err error
	select {
	case <-combinedCtx.Done():
		s.logger.Info("daemon context cancelled, shutting down")
	case err = <-acceptErr:
		if err != nil {
			s.logger.Error("accept loop failed", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// A deadline lets the loop notice cancellation
		if ul, ok := s.listener.(*net.UnixListener); ok {
			if err := ul.SetDeadline(time.Now().Add(1 * time.Second)); err != nil {
				s.logger.Warn("set listener deadline", "error", err)
			}
		}

		conn, err := s.listener.Accept()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn: conn,
			send: make(chan rpc.Response, s.clientBufferSize),
			done: make(chan struct{}),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		s.logger.Debug("client connected", "clients", s.getClientCount())

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// handleClient reads requests from a connected client and answers each
// one in its own goroutine
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var req rpc.Request
		if err := decoder.Decode(&req); err != nil {
			return
		}

		if req.Version != 0 && req.Version != rpc.ProtocolVersion {
			s.logger.Warn("protocol version mismatch", "got", req.Version, "want", rpc.ProtocolVersion)
		}

		// Shutdown cancels under s.mu before waiting on inflight
		s.mu.RLock()
		if s.ctx.Err() != nil {
			s.mu.RUnlock()
			return
		}
		s.inflight.Add(1)
		s.mu.RUnlock()

		go func() {
			defer s.inflight.Done()
			s.sendToClient(c, s.dispatch(req))
		}()
	}
}

// dispatch runs one request against the remote
func (s *Server) dispatch(req rpc.Request) rpc.Response {
	s.metrics.IncRequests()
	resp := rpc.Response{Version: rpc.ProtocolVersion, ID: req.ID, Type: req.Type}

	ctx, cancel := context.WithTimeout(s.ctx, s.requestTimeout)
	defer cancel()

	var err error
	switch req.Type {
	case rpc.TypeFetchPage:
		s.metrics.IncFetches()
		if req.Fetch == nil {
			err = fmt.Errorf("%s without payload: %w", req.Type, rpc.ErrBadRequest)
			break
		}
		resp.Page, err = s.remote.FetchColumnPage(ctx, *req.Fetch)

	case rpc.TypeUpdateStatus:
		s.metrics.IncUpdates()
		if req.Update == nil {
			err = fmt.Errorf("%s without payload: %w", req.Type, rpc.ErrBadRequest)
			break
		}
		resp.Update, err = s.remote.UpdateStatus(ctx, *req.Update)

	case rpc.TypePing:
		snap := s.metrics.GetSnapshot()
		resp.Metrics = &snap

	default:
		err = fmt.Errorf("unknown request type %q: %w", req.Type, rpc.ErrBadRequest)
	}

	if err != nil {
		resp.Page, resp.Update = nil, nil
		s.metrics.IncFailures()
		s.logger.Debug("request failed", "type", req.Type, "id", req.ID, "error", err)
		resp.Error = rpc.EncodeError(err)
	}
	return resp
}

// clientWriter sends responses to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for {
		select {
		case resp := <-c.send:
			if err := encoder.Encode(resp); err != nil {
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// Shutdown stops accepting, disconnects clients, waits for in-flight
// requests and removes the socket file
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down daemon")

		s.cancel()

		if s.listener != nil {
			if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
				s.logger.Warn("close listener", "error", closeErr)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			c.close()
		}
		s.clients = make(map[*client]bool)
		s.mu.Unlock()
		s.updateClientCount()

		s.inflight.Wait()

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			err = fmt.Errorf("failed to remove socket file: %w", removeErr)
		}
	})

	return err
}

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int64(s.getClientCount()))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	c.close()
	s.updateClientCount()
}

// sendToClient queues a response, giving up once the client is gone
func (s *Server) sendToClient(c *client, resp rpc.Response) bool {
	select {
	case c.send <- resp:
		return true
	case <-c.done:
		return false
	}
}
