package remote

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

// Server upgrades HTTP connections to websockets and hands each joined
// player to a registration callback as a ready-to-seat agent.
type Server struct {
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
	timeout  time.Duration
}

// NewServer creates a websocket server with the given decision timeout
func NewServer(timeout time.Duration, clock quartz.Clock, logger *log.Logger) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger.WithPrefix("remote-server"),
		clock:   clock,
		timeout: timeout,
	}
}

// Handler returns an HTTP handler that accepts player connections. Each
// client must send a join message first; register is then called with
// the new agent and the handler serves the connection until it drops.
func (s *Server) Handler(register func(*Agent)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		var msg Message
		if err := conn.ReadJSON(&msg); err != nil || msg.Type != MessageTypeJoin {
			s.logger.Warn("client did not join", "error", err)
			return
		}
		var join JoinData
		if err := json.Unmarshal(msg.Data, &join); err != nil || join.Name == "" {
			s.logger.Warn("malformed join payload", "error", err)
			return
		}

		agent := NewAgent(join.Name, conn, s.timeout, s.clock, s.logger)
		s.logger.Info("player joined", "player", join.Name, "remote", r.RemoteAddr)
		register(agent)

		if err := agent.Serve(); err != nil {
			s.logger.Info("player disconnected", "player", join.Name)
		}
	}
}
