package service

import (
	"strings"

	"interview-hub/internal/model"
)

// SanitizeRounds drops blank question strings from every round, then drops
// rounds left with no questions. Kept questions are not trimmed, only blank
// entries are removed. Rounds without an explicit number are numbered by
// their position in the submitted list. Returns the surviving rounds; callers
// reject the submission when none survive.
func SanitizeRounds(rounds []model.InterviewRound) []model.InterviewRound {
	out := make([]model.InterviewRound, 0, len(rounds))
	for i, r := range rounds {
		questions := make([]string, 0, len(r.Questions))
		for _, q := range r.Questions {
			if strings.TrimSpace(q) != "" {
				questions = append(questions, q)
			}
		}
		if len(questions) == 0 {
			continue
		}
		r.Questions = questions
		if r.RoundNumber == 0 {
			r.RoundNumber = i + 1
		}
		out = append(out, r)
	}
	return out
}
