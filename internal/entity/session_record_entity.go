package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionRecord struct {
	Id              uuid.UUID
	SessionId       uuid.UUID
	Group           string
	Style           string
	Pack            string
	Difficulty      string
	Consented       bool
	Accent          string
	Notes           string
	MaxQuestions    int
	DurationSeconds int
	QuestionsAsked  int
	EndReason       string
	StartedAt       time.Time
	EndedAt         *time.Time
	CreatedAt       time.Time
}
