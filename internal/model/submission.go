package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty and result enums, enforced both by request validation and by
// CHECK constraints on the submissions table.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	ResultSelected = "Selected"
	ResultRejected = "Rejected"
	ResultPending  = "Pending"
)

// InterviewRound is one stage of an interview process. Rounds are embedded in
// the submission row as a JSONB document and are not independently addressable.
type InterviewRound struct {
	RoundNumber int      `json:"roundNumber"`
	RoundType   string   `json:"roundType"`
	Description string   `json:"description,omitempty"`
	Questions   []string `json:"questions"`
}

type Submission struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	UserID     int              `db:"user_id" json:"userId"`
	Company    string           `db:"company" json:"company"`
	Position   string           `db:"position" json:"position"`
	Country    string           `db:"country" json:"country"`
	Experience string           `db:"experience" json:"experience"`
	Rounds     []InterviewRound `db:"rounds" json:"interviewRounds"`
	Difficulty string           `db:"difficulty" json:"difficulty"`
	Result     string           `db:"result" json:"result"`
	Salary     string           `db:"salary" json:"salary,omitempty"`
	Tips       string           `db:"tips" json:"tips,omitempty"`
	CreatedAt  time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updatedAt"`
}
