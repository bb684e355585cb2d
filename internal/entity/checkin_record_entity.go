package entity

import (
	"time"

	"github.com/google/uuid"
)

type CheckinRecord struct {
	Id         uuid.UUID
	SessionId  uuid.UUID
	Group      string
	Day        int
	Confidence int
	Stress     int
	Notes      string
	CreatedAt  time.Time
}
