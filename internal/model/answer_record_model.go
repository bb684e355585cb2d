package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerRecord struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Group        string    `gorm:"type:varchar(32);not null;index"`
	Question     string    `gorm:"type:text;not null"`
	Answer       string    `gorm:"type:text;not null"`
	Turn         int       `gorm:"not null"`
	IsFollowUp   bool      `gorm:"not null;default:false"`
	NonAnswer    bool      `gorm:"not null;default:false"`
	SpeakingRate *float64
	PauseRatio   *float64
	Gaze         *float64
	Fillers      *int
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (AnswerRecord) TableName() string {
	return "answer_records"
}
