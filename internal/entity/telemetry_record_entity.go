package entity

import (
	"time"

	"github.com/google/uuid"
)

type TelemetryRecord struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Group     string
	Event     string
	Payload   map[string]interface{}
	CreatedAt time.Time
}
