package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"hxforge/calculator"
)

type Server struct {
	cfg      calculator.Config
	upgrader websocket.Upgrader
}

func NewServer(cfg calculator.Config, upgrader websocket.Upgrader) *Server {
	return &Server{
		cfg:      cfg,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("websocket upgrade")
		return
	}
	defer conn.Close()

	hub := NewHub(s.cfg)
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()
	defer close(hub.done)

	log.WithField("remote", r.RemoteAddr).Info("client connected")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("read message")
			}
			log.WithField("remote", r.RemoteAddr).Info("client disconnected")
			return
		}
		hub.msg <- data
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Server.Addr).Info("server started")
	return http.ListenAndServe(s.cfg.Server.Addr, s.Handler())
}
