package llm

import "MBAConnect_SeniorMatching/internal/models"

func ids(matches []models.MatchResult) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.SeniorID
	}
	return out
}
