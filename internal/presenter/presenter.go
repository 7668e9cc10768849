/**
* Name:        presenter.go
* Description: 매칭 결과를 로스터와 조인해 화면/JSON 용 카드로 변환
* Workflow:    sorted MatchResult -> roster lookup (없는 ID는 버림) -> rank 1..n -> View
 */

package presenter

import (
	"fmt"
	"strconv"

	"MBAConnect_SeniorMatching/internal/models"
	"MBAConnect_SeniorMatching/internal/session"
)

const (
	// MaxClubs is how many club affiliations a card shows.
	MaxClubs = 3

	EmptyNotice = "No matches found. Try adjusting your profile details."
	ResetLabel  = "Refine Search"
)

type ScoreBand string

const (
	BandLow    ScoreBand = "low"
	BandMedium ScoreBand = "medium"
	BandHigh   ScoreBand = "high"
)

func BandFor(score float64) ScoreBand {
	switch {
	case score < 60:
		return BandLow
	case score < 80:
		return BandMedium
	default:
		return BandHigh
	}
}

// Lookuper resolves a senior by ID. *roster.Roster satisfies it.
type Lookuper interface {
	Lookup(id string) (models.SeniorProfile, bool)
}

type Card struct {
	Rank                  int       `json:"rank"`
	SeniorID              string    `json:"seniorId"`
	Name                  string    `json:"name"`
	Field                 string    `json:"field"`
	Company               string    `json:"company"`
	Role                  string    `json:"role"`
	UndergradDegree       string    `json:"undergradDegree"`
	PreMBAExperienceYears float64   `json:"preMbaExperienceYears"`
	PreMBAIndustry        string    `json:"preMbaIndustry"`
	Clubs                 []string  `json:"clubs"`
	Bio                   string    `json:"bio"`
	MatchScore            float64   `json:"matchScore"`
	Reason                string    `json:"reason"`
	Band                  ScoreBand `json:"band"`
}

// ScoreLabel renders the score as shown on the card badge.
func (c Card) ScoreLabel() string {
	return strconv.FormatFloat(c.MatchScore, 'f', -1, 64) + "% Match"
}

// ExperienceLine renders the pre-MBA summary, e.g. "3 Years • Manufacturing".
func (c Card) ExperienceLine() string {
	years := strconv.FormatFloat(c.PreMBAExperienceYears, 'f', -1, 64)
	if c.PreMBAIndustry == "" {
		return fmt.Sprintf("%s Years", years)
	}
	return fmt.Sprintf("%s Years • %s", years, c.PreMBAIndustry)
}

// ResultsView is the rendered result list. Empty is set instead of sending
// an empty grid.
type ResultsView struct {
	Cards      []Card `json:"cards"`
	Empty      bool   `json:"empty"`
	Notice     string `json:"notice,omitempty"`
	ResetLabel string `json:"resetLabel"`
}

// BuildCards joins results (already sorted) to the roster. Results whose
// senior is unknown are skipped and ranks stay contiguous from 1.
func BuildCards(results []models.MatchResult, seniors Lookuper) ResultsView {
	cards := make([]Card, 0, len(results))
	for _, res := range results {
		senior, ok := seniors.Lookup(res.SeniorID)
		if !ok {
			continue
		}

		clubs := senior.ClubsAndCommittees
		if len(clubs) > MaxClubs {
			clubs = clubs[:MaxClubs]
		}

		cards = append(cards, Card{
			Rank:                  len(cards) + 1,
			SeniorID:              senior.ID,
			Name:                  senior.Name,
			Field:                 senior.Field,
			Company:               senior.Company,
			Role:                  senior.Role,
			UndergradDegree:       senior.UndergradDegree,
			PreMBAExperienceYears: senior.PreMBAExperienceYears,
			PreMBAIndustry:        senior.PreMBAIndustry,
			Clubs:                 append([]string{}, clubs...),
			Bio:                   senior.Bio,
			MatchScore:            res.MatchScore,
			Reason:                res.Reason,
			Band:                  BandFor(res.MatchScore),
		})
	}

	view := ResultsView{Cards: cards, ResetLabel: ResetLabel}
	if len(cards) == 0 {
		view.Empty = true
		view.Notice = EmptyNotice
	}
	return view
}

// SessionView is what the page, /api/session and the websocket stream render.
type SessionView struct {
	State   session.Phase          `json:"state"`
	Version uint64                 `json:"version"`
	Error   string                 `json:"error,omitempty"`
	Draft   *models.StudentProfile `json:"draft,omitempty"`
	Results *ResultsView           `json:"results,omitempty"`
}

func Present(snap session.Snapshot, seniors Lookuper) SessionView {
	view := SessionView{State: snap.State.Phase(), Version: snap.Version}

	switch st := snap.State.(type) {
	case session.Intake:
		view.Error = st.LastError
		view.Draft = st.Draft
	case session.ShowingResults:
		results := BuildCards(st.Results, seniors)
		view.Results = &results
	}
	return view
}
