package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/dtroode/users-server/internal/api/http/handler"
	"github.com/dtroode/users-server/internal/api/http/request"
	"github.com/dtroode/users-server/internal/api/http/response"
	"github.com/dtroode/users-server/internal/logger"
	"github.com/dtroode/users-server/internal/model"
)

const (
	acceptRetryDelay = 10 * time.Millisecond
	lingerTimeout    = 500 * time.Millisecond
	lingerMaxBytes   = 256 << 10
)

var _ model.Server = (*TCPServer)(nil)

// Options tunes the connection loop.
type Options struct {
	MaxRequestBytes int64
	// Sequential serves each connection inline before the next Accept.
	Sequential bool
	// MaxConnections bounds concurrently served connections when not Sequential.
	MaxConnections int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// TCPServer accepts connections and serves exactly one request on each.
type TCPServer struct {
	handler handler.Func
	addr    string
	opts    Options
	logger  *logger.Logger
	sem     *semaphore.Weighted

	baseCtx context.Context
	cancel  context.CancelFunc

	mu       sync.Mutex
	listener net.Listener
	closing  bool
	conns    sync.WaitGroup
}

// NewTCPServer creates a TCPServer serving h on addr.
func NewTCPServer(h handler.Func, addr string, opts Options, logger *logger.Logger) *TCPServer {
	if opts.MaxConnections <= 0 {
		opts.MaxConnections = 1
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &TCPServer{
		handler: h,
		addr:    addr,
		opts:    opts,
		logger:  logger,
		sem:     semaphore.NewWeighted(opts.MaxConnections),
		baseCtx: ctx,
		cancel:  cancel,
	}
}

// Start listens on the configured address using the provided security layer and serves.
func (s *TCPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(listener)
}

// Serve runs the accept loop on listener until Stop is called.
func (s *TCPServer) Serve(listener net.Listener) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		listener.Close()
		return nil
	}
	s.listener = listener
	s.mu.Unlock()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if s.isClosing() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error("unable to accept connection", "error", err)
			time.Sleep(acceptRetryDelay)
			continue
		}

		if !s.track() {
			conn.Close()
			return nil
		}

		if s.opts.Sequential {
			s.serveConn(conn)
			continue
		}

		if err := s.sem.Acquire(s.baseCtx, 1); err != nil {
			s.conns.Done()
			conn.Close()
			return nil
		}
		go func() {
			defer s.sem.Release(1)
			s.serveConn(conn)
		}()
	}
}

// track registers a new in-flight connection unless the server is closing.
func (s *TCPServer) track() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closing {
		return false
	}
	s.conns.Add(1)
	return true
}

func (s *TCPServer) isClosing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closing
}

func (s *TCPServer) serveConn(conn net.Conn) {
	defer s.conns.Done()
	defer conn.Close()

	connID := uuid.NewString()
	ctx := request.WithConnID(s.baseCtx, connID)

	if s.opts.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout))
	}

	req, err := request.Read(conn, s.opts.MaxRequestBytes)

	var resp response.Response
	switch {
	case errors.Is(err, request.ErrEmptyRequest):
		s.logger.Debug("connection closed without a request", "conn_id", connID, "remote", conn.RemoteAddr().String())
		return
	case errors.Is(err, request.ErrRequestTooLarge):
		s.logger.Warn("rejecting oversized request", "conn_id", connID, "limit", s.opts.MaxRequestBytes)
		resp = response.PayloadTooLarge()
	case err != nil:
		s.logger.Error("unable to read stream", "conn_id", connID, "error", err)
		return
	default:
		resp = s.handler(ctx, req)
	}

	if s.opts.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout))
	}
	if _, err := resp.WriteTo(conn); err != nil {
		s.logger.Error("unable to write response", "conn_id", connID, "error", err)
		return
	}

	linger(conn)
}

// linger half-closes conn and drains what the peer still sends, so unread
// request bytes do not turn the close into a reset that discards the response.
func linger(conn net.Conn) {
	cw, ok := conn.(interface{ CloseWrite() error })
	if !ok {
		return
	}
	if err := cw.CloseWrite(); err != nil {
		return
	}
	_ = conn.SetReadDeadline(time.Now().Add(lingerTimeout))
	_, _ = io.Copy(io.Discard, io.LimitReader(conn, lingerMaxBytes))
}

// Stop closes the listener and waits for in-flight connections.
// When ctx ends first, handlers see their context cancelled.
func (s *TCPServer) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener.Close()
	}

	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return fmt.Errorf("failed to drain connections: %w", ctx.Err())
	}
}

// Address returns the configured listen address.
func (s *TCPServer) Address() string {
	return s.addr
}
