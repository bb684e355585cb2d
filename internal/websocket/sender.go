package websocket

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
)

const writeWait = 10 * time.Second

var errSenderClosed = errors.New("websocket sender closed")

// Sender serializes writes to a single connection. The underlying conn does
// not tolerate concurrent writers.
type Sender struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	closed bool
}

func NewSender(conn *websocket.Conn) *Sender {
	return &Sender{conn: conn}
}

func (s *Sender) Send(message interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errSenderClosed
	}
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteJSON(message)
}

// Close sends a close frame and tears the connection down. Safe to call more
// than once.
func (s *Sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
	return s.conn.Close()
}
