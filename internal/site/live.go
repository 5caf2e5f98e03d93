package site

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveEvent is a message from the browser. X is the touch position of
// touchstart and touchend; Width and Viewport are the measurements of resize.
type liveEvent struct {
	Type     string  `json:"type"`
	Width    float64 `json:"width,omitempty"`
	Viewport float64 `json:"viewport,omitempty"`
	X        float64 `json:"x,omitempty"`
	OnButton bool    `json:"on_button,omitempty"`
}

// liveMessage is a message to the browser: a frame after every event, or an
// error for a message the session could not apply.
type liveMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
	Frame     any    `json:"frame,omitempty"`
	Moved     bool   `json:"moved"`
	Swipe     string `json:"swipe,omitempty"`
	Error     string `json:"error,omitempty"`
}

// handleLive runs one carousel per connection. Events are applied in the
// order they are read; the carousel never leaves this goroutine.
func (s *Site) handleLive(w http.ResponseWriter, r *http.Request) {
	d, err := s.newDriver(r.Context(), chi.URLParam(r, "name"), r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := liveSession{id: uuid.NewString(), driver: d}
	if !sess.send(conn, liveMessage{Type: "frame"}) {
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var ev liveEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			if !sess.send(conn, liveMessage{Type: "error", Error: "invalid message format"}) {
				return
			}
			continue
		}
		if !sess.send(conn, sess.apply(ev)) {
			return
		}
	}
}

type liveSession struct {
	id     string
	driver driver
}

// apply runs one event against the carousel.
func (l *liveSession) apply(ev liveEvent) liveMessage {
	m := liveMessage{Type: "frame"}
	switch ev.Type {
	case "resize":
		before := l.driver.Index()
		l.driver.Resize(ev.Width, ev.Viewport)
		m.Moved = l.driver.Index() != before
	case "advance":
		m.Moved = l.driver.Advance()
	case "retreat":
		m.Moved = l.driver.Retreat()
	case "touchstart":
		l.driver.TouchStart(ev.X, ev.OnButton)
	case "touchend":
		dir := l.driver.TouchEnd(ev.X)
		m.Swipe = dir.String()
		m.Moved = m.Swipe != "none"
	case "reset":
		before := l.driver.Index()
		l.driver.Reset()
		m.Moved = before != 0
	default:
		return liveMessage{Type: "error", Error: "unknown event type: " + ev.Type}
	}
	return m
}

// send stamps msg with the session and the current frame and writes it. It
// reports whether the connection is still usable.
func (l *liveSession) send(conn *websocket.Conn, msg liveMessage) bool {
	msg.SessionID = l.id
	if msg.Type == "frame" {
		msg.Frame = l.driver.frame()
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("site: websocket write: %v", err)
		return false
	}
	return true
}
