package events

import "time"

// Interview lifecycle event types. Subjects on the bus are prefixed with
// "events." by the publisher.
const (
	TypeSessionConnected    = "session.connected"
	TypeSessionDisconnected = "session.disconnected"
	TypeSessionEnded        = "session.ended"
)

// NewSessionEvent builds a lifecycle event for one interview session.
func NewSessionEvent(eventType, sessionId string, data map[string]interface{}) BaseEvent {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["session_id"] = sessionId
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
