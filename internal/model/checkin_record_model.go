package model

import (
	"time"

	"github.com/google/uuid"
)

type CheckinRecord struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId  uuid.UUID `gorm:"type:uuid;not null;index"`
	Group      string    `gorm:"type:varchar(32);not null;index"`
	Day        int       `gorm:"not null"`
	Confidence int       `gorm:"not null"`
	Stress     int       `gorm:"not null"`
	Notes      string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (CheckinRecord) TableName() string {
	return "checkin_records"
}
