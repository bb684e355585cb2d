package websocket

import (
	"context"
	"errors"
	"net"
	"time"

	"ai-interviewer-be/internal/interview"
	"ai-interviewer-be/internal/pkg/logger"

	"github.com/gofiber/websocket/v2"
)

const maxMessageSize = 64 * 1024

// Serve runs the read loop for one interview connection. The read deadline
// tracks the session's time budget, so an idle client still gets terminated
// when the clock runs out.
func Serve(engine *interview.Engine, conn *websocket.Conn, log logger.ILogger) {
	ctx := context.Background()
	conn.SetReadLimit(maxMessageSize)
	engine.Greet()

	for !engine.Ended() {
		if deadline, ok := engine.Deadline(); ok {
			_ = conn.SetReadDeadline(deadline)
		} else {
			_ = conn.SetReadDeadline(time.Time{})
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				engine.HandleTimeout()
				continue
			}
			// Client went away; nothing to terminate gracefully.
			log.Debug("websocket.conn", "read loop ended", map[string]interface{}{
				"session_id": engine.SessionId().String(),
				"error":      err.Error(),
			})
			return
		}
		engine.HandleRaw(ctx, raw)
	}
}
