// Package spectate streams read-only session snapshots to remote viewers.
// GET /snapshot returns the latest snapshot as JSON; GET /watch upgrades to a
// websocket that receives every published snapshot as a msgpack binary frame.
package spectate

import (
	"context"
	"sync"
	"time"

	"crown-defense/internal/config"
	"crown-defense/internal/snapshot"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	writeWait          = 2 * time.Second
	defaultMinInterval = 100 * time.Millisecond
)

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub раздаёт снимки подписчикам. Publish вызывается из игрового цикла и
// никогда не блокирует его: медленный зритель просто теряет кадры.
type Hub struct {
	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}

	mu          sync.RWMutex
	latest      *snapshot.Snapshot
	latestFrame []byte
	lastPublish time.Time
	minInterval time.Duration
	count       int
}

func NewHub() *Hub {
	return &Hub{
		clients:     make(map[*client]bool),
		register:    make(chan *client),
		unregister:  make(chan *client),
		broadcast:   make(chan []byte, config.SpectateSendBuffer),
		done:        make(chan struct{}),
		minInterval: defaultMinInterval,
	}
}

// SetMinInterval ограничивает частоту рассылки. 0 — каждый Publish.
func (h *Hub) SetMinInterval(d time.Duration) {
	h.mu.Lock()
	h.minInterval = d
	h.mu.Unlock()
}

// Run обслуживает регистрацию и рассылку до отмены ctx. Вызывается один раз.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.setCount(0)
			return
		case c := <-h.register:
			h.clients[c] = true
			h.setCount(len(h.clients))
			log.WithField("client", c.id).Info("Spectator connected")
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
				h.setCount(len(h.clients))
				log.WithField("client", c.id).Info("Spectator left")
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
					log.WithField("client", c.id).Warn("Spectator too slow, dropped")
				}
			}
			h.setCount(len(h.clients))
		}
	}
}

// Publish запоминает снимок и рассылает его зрителям.
func (h *Hub) Publish(snap *snapshot.Snapshot) {
	h.mu.Lock()
	now := time.Now()
	if h.latest != nil && h.minInterval > 0 && now.Sub(h.lastPublish) < h.minInterval {
		h.mu.Unlock()
		return
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		h.mu.Unlock()
		log.WithError(err).Warn("Cannot encode snapshot")
		return
	}
	cp := *snap
	h.latest = &cp
	h.latestFrame = data
	h.lastPublish = now
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
	default:
		// рассылка не успевает: кадр пропускается
	}
}

// Latest возвращает последний опубликованный снимок.
func (h *Hub) Latest() (snapshot.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return snapshot.Snapshot{}, false
	}
	return *h.latest, true
}

// ClientCount возвращает число подключённых зрителей.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.count
}

func (h *Hub) setCount(n int) {
	h.mu.Lock()
	h.count = n
	h.mu.Unlock()
}

func (h *Hub) latestBytes() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latestFrame
}

func (c *client) writer() {
	defer c.conn.Close()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// reader только отслеживает закрытие: зрители ничего не присылают.
func (c *client) reader(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
