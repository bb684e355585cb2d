package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TelemetryRecord struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Group     string         `gorm:"type:varchar(32);not null;index"`
	Event     string         `gorm:"type:varchar(64);not null;index"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (TelemetryRecord) TableName() string {
	return "telemetry_records"
}
