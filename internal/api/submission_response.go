package api

import (
	"time"

	"interview-hub/internal/model"
	"interview-hub/internal/store"
)

// SubmissionResponse is a stored submission, optionally joined with its
// owner's public fields.
// swagger:model api.SubmissionResponse
type SubmissionResponse struct {
	ID              string                 `json:"id" example:"6fa1cbb8-3c7d-4f6e-9d1a-0b64f4e0a3f2"`
	UserID          int                    `json:"userId" example:"1"`
	Company         string                 `json:"company" example:"Acme"`
	Position        string                 `json:"position" example:"Backend Engineer"`
	Country         string                 `json:"country" example:"Germany"`
	Experience      string                 `json:"experience"`
	InterviewRounds []model.InterviewRound `json:"interviewRounds"`
	Difficulty      string                 `json:"difficulty" example:"Medium"`
	Result          string                 `json:"result" example:"Pending"`
	Salary          string                 `json:"salary,omitempty" example:"85k EUR"`
	Tips            string                 `json:"tips,omitempty"`
	User            *SubmissionOwner       `json:"user,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// NewSubmissionResponse shapes a stored submission for the wire.
func NewSubmissionResponse(s *model.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:              s.ID.String(),
		UserID:          s.UserID,
		Company:         s.Company,
		Position:        s.Position,
		Country:         s.Country,
		Experience:      s.Experience,
		InterviewRounds: s.Rounds,
		Difficulty:      s.Difficulty,
		Result:          s.Result,
		Salary:          s.Salary,
		Tips:            s.Tips,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// NewSubmissionWithOwnerResponse additionally attaches the owner fields.
func NewSubmissionWithOwnerResponse(s *store.SubmissionWithOwner) SubmissionResponse {
	out := NewSubmissionResponse(&s.Submission)
	out.User = &SubmissionOwner{Name: s.OwnerName, Email: s.OwnerEmail}
	return out
}
