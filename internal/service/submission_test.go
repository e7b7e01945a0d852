package service

import (
	"testing"

	"interview-hub/internal/model"

	"github.com/stretchr/testify/require"
)

func TestSanitizeRounds(t *testing.T) {
	// blank questions stripped, kept values untouched
	out := SanitizeRounds([]model.InterviewRound{
		{RoundType: "Technical", Questions: []string{"Q1", "  ", "Q2"}},
	})
	require.Len(t, out, 1)
	require.Equal(t, []string{"Q1", "Q2"}, out[0].Questions)

	// rounds left with zero questions are dropped
	out = SanitizeRounds([]model.InterviewRound{
		{RoundType: "HR", Questions: []string{" ", "\t"}},
		{RoundType: "Technical", Questions: []string{"Q1"}},
	})
	require.Len(t, out, 1)
	require.Equal(t, "Technical", out[0].RoundType)

	// everything blank leaves nothing
	out = SanitizeRounds([]model.InterviewRound{
		{RoundType: "HR", Questions: []string{"   "}},
	})
	require.Empty(t, out)

	// unnumbered rounds are numbered by position, explicit numbers kept
	out = SanitizeRounds([]model.InterviewRound{
		{RoundType: "Screen", Questions: []string{"a"}},
		{RoundNumber: 5, RoundType: "Onsite", Questions: []string{"b"}},
	})
	require.Equal(t, 1, out[0].RoundNumber)
	require.Equal(t, 5, out[1].RoundNumber)

	require.Empty(t, SanitizeRounds(nil))
}
