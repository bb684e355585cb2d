package entity

import (
	"time"

	"github.com/google/uuid"
)

type AnswerRecord struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	Group        string
	Question     string
	Answer       string
	Turn         int
	IsFollowUp   bool
	NonAnswer    bool
	SpeakingRate *float64
	PauseRatio   *float64
	Gaze         *float64
	Fillers      *int
	CreatedAt    time.Time
}
