package models

// MatchResult is one ranked record returned by the matching model.
// SeniorID may not resolve against the roster; the presenter drops those.
type MatchResult struct {
	SeniorID   string  `json:"seniorId"`
	MatchScore float64 `json:"matchScore"`
	Reason     string  `json:"reason"`
}
