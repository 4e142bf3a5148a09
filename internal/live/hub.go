// live раздаёт события изменения контента по websocket: один хаб на процесс
// подписан на поток изменений хранилища и рассылает каждое событие всем
// подключённым клиентам консоли. Экран, получивший событие своей коллекции,
// перезагружает текущую страницу.
//
// Особенности:
//   - подписка на поток — cancel-хендл с идемпотентной отменой; при обрыве
//     потока хаб переподписывается с паузой, события за время паузы теряются
//     (консоль переживает это перезагрузкой страницы);
//   - медленный клиент не тормозит остальных: при переполнении его буфера
//     соединение закрывается.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pribylovaa/college-console/internal/storage"
	logctx "github.com/pribylovaa/college-console/pkg/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	resubscribeGap = 2 * time.Second
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Консоль ходит через собственный фронт; Origin проверяет обратный прокси.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub — единственный websocket-хаб консоли.
type Hub struct {
	watcher storage.Watcher

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New создаёт хаб поверх подписки на изменения хранилища.
func New(w storage.Watcher) *Hub {
	return &Hub{
		watcher: w,
		clients: make(map[*client]struct{}),
	}
}

// Run держит подписку на поток изменений до отмены контекста.
// При обрыве потока переподписывается через resubscribeGap.
func (h *Hub) Run(ctx context.Context) {
	const op = "live/Run"

	lg := logctx.From(ctx).With("op", op)

	for {
		events, cancel, err := h.watcher.WatchChanges(ctx)
		if err != nil {
			lg.Error("watch subscribe failed", "err", err)
		} else {
			for ev := range events {
				raw, err := json.Marshal(ev)
				if err != nil {
					lg.Error("event marshal failed", "err", err)
					continue
				}
				h.broadcast(raw)
			}
			cancel()
		}

		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-time.After(resubscribeGap):
		}
	}
}

// Handler — GET-хендлер апгрейда соединения до websocket.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "live/Handler"

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logctx.From(r.Context()).
				LogAttrs(r.Context(), slog.LevelWarn, "websocket upgrade failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			return
		}

		c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

		h.mu.Lock()
		h.clients[c] = struct{}{}
		h.mu.Unlock()

		go h.writePump(c)
		go h.readPump(c)
	}
}

// broadcast рассылает событие всем клиентам; клиент с полным буфером
// отключается.
func (h *Hub) broadcast(raw []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- raw:
		default:
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) drop(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// readPump вычитывает входящие кадры только ради keepalive и закрытия.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.drop(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case raw, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
