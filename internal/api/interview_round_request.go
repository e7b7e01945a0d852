package api

// InterviewRoundRequest is one round inside a submission payload. Blank
// questions pass validation here and are stripped by the handler; a round may
// be dropped entirely once its questions are all blank.
// swagger:model api.InterviewRoundRequest
type InterviewRoundRequest struct {
	RoundNumber int      `json:"roundNumber" example:"1"`
	RoundType   string   `json:"roundType" validate:"required" example:"Technical"`
	Description string   `json:"description" example:"DSA round with two interviewers"`
	Questions   []string `json:"questions" validate:"required,min=1"`
}
