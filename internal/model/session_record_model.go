package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionRecord struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Group           string    `gorm:"type:varchar(32);not null;index"`
	Style           string    `gorm:"type:varchar(32);not null"`
	Pack            string    `gorm:"type:varchar(32);not null"`
	Difficulty      string    `gorm:"type:varchar(32);not null"`
	Consented       bool      `gorm:"not null;default:false"`
	Accent          string    `gorm:"type:varchar(64)"`
	Notes           string    `gorm:"type:text"`
	MaxQuestions    int       `gorm:"not null;default:0"`
	DurationSeconds int       `gorm:"not null;default:0"`
	QuestionsAsked  int       `gorm:"not null;default:0"`
	EndReason       string    `gorm:"type:varchar(32)"`
	StartedAt       time.Time `gorm:"not null"`
	EndedAt         *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (SessionRecord) TableName() string {
	return "session_records"
}
