package llm

import (
	"context"

	"MBAConnect_SeniorMatching/internal/models"
)

// Matcher ranks roster seniors for a student. Results are sorted by
// MatchScore descending; any error wraps one of the Err* kinds.
type Matcher interface {
	Match(ctx context.Context, student models.StudentProfile, seniors []models.SeniorProfile) ([]models.MatchResult, error)
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(ctx context.Context, student models.StudentProfile, seniors []models.SeniorProfile) ([]models.MatchResult, error)

func (f MatcherFunc) Match(ctx context.Context, student models.StudentProfile, seniors []models.SeniorProfile) ([]models.MatchResult, error) {
	return f(ctx, student, seniors)
}
