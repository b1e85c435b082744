package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/dendrascience/sugarctl/internal/codec"
	"github.com/dendrascience/sugarctl/sugar"
)

// Server hosts a sugar.Commands implementation on a Unix socket. Every
// connection is served on its own goroutine, so a long deploy does not hold
// up a concurrent show.
type Server struct {
	socketPath string
	impl       sugar.Commands
	logger     *slog.Logger

	// ready is closed once the listener is accepting.
	ready     chan struct{}
	readyOnce sync.Once

	// active tracks in-flight calls for graceful shutdown.
	active sync.WaitGroup
}

// NewServer creates a server that will listen on socketPath and dispatch
// to impl.
func NewServer(socketPath string, impl sugar.Commands, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		socketPath: socketPath,
		impl:       impl,
		logger:     logger,
		ready:      make(chan struct{}),
	}
}

// Ready is closed when the server has started listening.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Serve accepts connections until ctx is cancelled, then waits for in-flight
// calls to settle. A stale socket file at the path is removed first and the
// socket file is removed on return.
func (s *Server) Serve(ctx context.Context) error {
	if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale socket %s: %w", s.socketPath, err)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.socketPath, err)
	}
	defer func() {
		listener.Close()
		os.Remove(s.socketPath)
	}()

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info("socket server listening", "path", s.socketPath)
	s.readyOnce.Do(func() { close(s.ready) })

	var retryDelay time.Duration
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				break
			}
			retryDelay = nextAcceptDelay(retryDelay)
			s.logger.Error("accept failed", "error", err, "retry_in", retryDelay)
			select {
			case <-ctx.Done():
			case <-time.After(retryDelay):
			}
			continue
		}
		retryDelay = 0

		s.active.Add(1)
		go func() {
			defer s.active.Done()
			s.handleConnection(ctx, conn)
		}()
	}

	s.active.Wait()
	return nil
}

// nextAcceptDelay doubles the pause after a failed Accept, from
// minAcceptDelay up to maxAcceptDelay.
func nextAcceptDelay(previous time.Duration) time.Duration {
	if previous == 0 {
		return minAcceptDelay
	}
	return min(previous*2, maxAcceptDelay)
}

// handleConnection serves one call. Once accepted, a call runs to completion
// even if Serve is shutting down.
func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	ctx = context.WithoutCancel(ctx)

	conn.SetReadDeadline(time.Now().Add(readTimeout))

	var raw bytes.Buffer
	var envelope Request
	if err := codec.NewDecoder(io.TeeReader(io.LimitReader(conn, maxMessageSize), &raw)).Decode(&envelope); err != nil {
		if errors.Is(err, io.EOF) {
			return
		}
		s.logger.Debug("invalid request", "error", err, "cbor", diagnose(raw.Bytes()))
		s.writeResponse(conn, Response{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}
	conn.SetReadDeadline(time.Time{})

	if envelope.Action == "" {
		s.writeResponse(conn, Response{Error: ErrMissingAction.Error()})
		return
	}

	req, err := DecodeRequest(envelope)
	if err != nil {
		s.logger.Debug("rejected request", "action", envelope.Action, "id", envelope.ID, "error", err, "args", diagnose(envelope.Args))
		s.writeResponse(conn, Response{Error: err.Error()})
		return
	}

	if err := s.dispatch(ctx, req); err != nil {
		s.logger.Debug("call failed", "action", envelope.Action, "id", envelope.ID, "error", err)
		s.writeResponse(conn, Response{Error: err.Error()})
		return
	}

	s.logger.Debug("call settled", "action", envelope.Action, "id", envelope.ID)
	s.writeResponse(conn, Response{OK: true})
}

// dispatch runs the call, turning a panic in the implementation into an
// error response instead of killing the server.
func (s *Server) dispatch(ctx context.Context, req sugar.Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", sugar.ErrImplementationPanic, r)
		}
	}()
	return sugar.Dispatch(ctx, s.impl, req)
}

// diagnose renders data in CBOR diagnostic notation for debug logs. Data
// that cannot be rendered, such as a truncated message, is shown as hex.
func diagnose(data []byte) string {
	notation, err := codec.Diagnose(data)
	if err != nil {
		return fmt.Sprintf("%x", data)
	}
	return notation
}

// writeResponse failures are only logged: the connection is closing either way.
func (s *Server) writeResponse(conn net.Conn, response Response) {
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := codec.NewEncoder(conn).Encode(response); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}
