package api

// SubmissionRequest is the payload for creating or replacing a submission.
// swagger:model api.SubmissionRequest
type SubmissionRequest struct {
	Company         string                  `json:"company" validate:"required" example:"Acme"`
	Position        string                  `json:"position" validate:"required" example:"Backend Engineer"`
	Country         string                  `json:"country" validate:"required" example:"Germany"`
	Experience      string                  `json:"experience" validate:"required"`
	InterviewRounds []InterviewRoundRequest `json:"interviewRounds" validate:"required,min=1,dive"`
	Difficulty      string                  `json:"difficulty" validate:"required,oneof=Easy Medium Hard" example:"Medium"`
	Result          string                  `json:"result" validate:"omitempty,oneof=Selected Rejected Pending" example:"Pending"`
	Salary          string                  `json:"salary" example:"85k EUR"`
	Tips            string                  `json:"tips"`
}
