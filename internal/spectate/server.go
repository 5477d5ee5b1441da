package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
)

const (
	URISnapshot = "/snapshot"
	URIWatch    = "/watch"
)

// Server — HTTP-обвязка хаба.
type Server struct {
	hub      *Hub
	router   *way.Router
	upgrader websocket.Upgrader
}

func NewServer(hub *Hub) *Server {
	s := &Server{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", URISnapshot, s.handleSnapshot())
	s.router.HandleFunc("GET", URIWatch, s.handleWatch())
}

// ServeHTTP реализует http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := s.hub.Latest()
		if !ok {
			http.Error(w, "no session yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snap); err != nil {
			log.WithError(err).Warn("Cannot write snapshot")
		}
	}
}

func (s *Server) handleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("Websocket upgrade failed")
			return
		}
		c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, 4)}
		// Сразу отправляем последний снимок, чтобы зритель не ждал следующего кадра
		if frame := s.hub.latestBytes(); frame != nil {
			c.send <- frame
		}
		select {
		case s.hub.register <- c:
		case <-s.hub.done:
			conn.Close()
			return
		case <-r.Context().Done():
			conn.Close()
			return
		}
		go c.writer()
		go c.reader(s.hub)
	}
}

// ListenAndServe запускает хаб и HTTP-сервер до отмены ctx.
func ListenAndServe(ctx context.Context, addr string, hub *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go hub.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithField("addr", addr).Info("Spectator feed listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
