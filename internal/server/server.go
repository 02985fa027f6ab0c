package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/BrianKYildirim/key-value-storage/internal/command"
)

// readLimit is the most a session reads per request. A payload longer
// than one read is not reassembled; whatever arrived is the request.
const readLimit = 1024

// Server accepts TCP connections and runs one session goroutine per
// connection, all sharing a single interpreter and therefore a single
// store. The accept loop never blocks on client I/O.
type Server struct {
	interp  *command.Interpreter
	logger  hclog.Logger
	ln      net.Listener
	closing atomic.Bool
}

// New creates a Server dispatching to interp.
func New(interp *command.Interpreter, logger hclog.Logger) *Server {
	return &Server{
		interp: interp,
		logger: logger,
	}
}

// Listen binds the listening socket. It must be called before Serve.
// Addr reports the bound address afterwards, which matters when the
// configured port is 0.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.ln = ln
	s.logger.Info("server listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listener's bound address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve runs the accept loop until ctx is cancelled or the listener
// fails. On cancellation the listener closes and Serve returns nil;
// sessions already running are abandoned, not drained.
func (s *Server) Serve(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.closing.Store(true)
		s.ln.Close()
	}()

	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if s.closing.Load() || errors.Is(err, net.ErrClosed) {
				s.logger.Info("server stopped accepting")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.handleConn(conn)
	}
}

// handleConn is one session: read one request, respond, repeat until the
// peer disconnects, asks to quit, or the connection errors out. Any I/O
// failure ends only this session. The connection is closed exactly once
// on every exit path.
func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	s.logger.Info("client connected", "remote", remote)

	buf := make([]byte, readLimit)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.logger.Debug("session read failed", "remote", remote, "error", err)
			}
			break
		}

		message := strings.TrimSpace(string(buf[:n]))
		s.logger.Debug("received command", "remote", remote, "command", message)

		// quit never reaches the interpreter and gets no reply.
		if strings.EqualFold(message, "quit") {
			s.logger.Info("client requested quit", "remote", remote)
			break
		}

		response := s.interp.Execute(message)
		if _, err := conn.Write([]byte(response)); err != nil {
			s.logger.Debug("session write failed", "remote", remote, "error", err)
			break
		}
	}

	s.logger.Info("client disconnected", "remote", remote)
}
