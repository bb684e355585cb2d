package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionId filters records belonging to one interview session.
type BySessionId struct {
	SessionId uuid.UUID
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// ByGroup filters by study arm. The column name is quoted because "group"
// is a reserved word in Postgres.
type ByGroup struct {
	Group string
}

func (s ByGroup) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(`"group" = ?`, s.Group)
}

// ByEvent filters telemetry records by event name.
type ByEvent struct {
	Event string
}

func (s ByEvent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event = ?", s.Event)
}
