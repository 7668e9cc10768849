package session

import "MBAConnect_SeniorMatching/internal/models"

type Phase string

const (
	PhaseIntake           Phase = "intake"
	PhaseAwaitingResponse Phase = "awaiting_response"
	PhaseShowingResults   Phase = "showing_results"
)

// State is one of Intake, AwaitingResponse or ShowingResults.
type State interface {
	Phase() Phase
	sealed()
}

// Intake는 폼 입력 단계. 직전 요청이 실패했다면 LastError와 제출했던 값(Draft)을 가진다.
type Intake struct {
	LastError string
	Draft     *models.StudentProfile
}

// AwaitingResponse means exactly one match request is in flight.
type AwaitingResponse struct{}

// ShowingResults holds the sorted match records of the last request.
type ShowingResults struct {
	Results []models.MatchResult
}

func (Intake) Phase() Phase           { return PhaseIntake }
func (AwaitingResponse) Phase() Phase { return PhaseAwaitingResponse }
func (ShowingResults) Phase() Phase   { return PhaseShowingResults }

func (Intake) sealed()           {}
func (AwaitingResponse) sealed() {}
func (ShowingResults) sealed()   {}
