package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"MBAConnect_SeniorMatching/internal/models"
)

// CleanJSON trims whitespace and a surrounding markdown code fence.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// DecodeMatches strictly decodes a model payload into match records sorted by
// score descending. Ties keep the payload order.
func DecodeMatches(body string) ([]models.MatchResult, error) {
	cleaned := CleanJSON(body)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: response body is empty", ErrEmptyResponse)
	}

	result, err := compiledMatchSchema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, fmt.Errorf("%w: response is not valid JSON: %v", ErrParse, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: schema validation failed: %v", ErrParse, errs)
	}

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.DisallowUnknownFields()

	var matches []models.MatchResult
	if err := dec.Decode(&matches); err != nil {
		return nil, fmt.Errorf("%w: decode matches: %v", ErrParse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON array", ErrParse)
	}

	SortByScore(matches)
	return matches, nil
}

// SortByScore orders matches by MatchScore descending, stable on ties.
func SortByScore(matches []models.MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}
