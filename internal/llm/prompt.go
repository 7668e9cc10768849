package llm

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"MBAConnect_SeniorMatching/internal/models"
)

//go:embed prompt.tmpl
var matchPromptRaw string

var matchPromptTemplate = template.Must(template.New("match").Funcs(template.FuncMap{
	"years": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}).Parse(matchPromptRaw))

// seniorSummary is the roster projection sent to the model. Clubs are left out.
type seniorSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Field     string  `json:"field"`
	Role      string  `json:"role"`
	Company   string  `json:"company"`
	Undergrad string  `json:"undergrad"`
	PreMBAExp float64 `json:"preMbaExp"`
	PreMBAInd string  `json:"preMbaInd"`
	Bio       string  `json:"bio"`
}

func summarize(seniors []models.SeniorProfile) []seniorSummary {
	out := make([]seniorSummary, 0, len(seniors))
	for _, s := range seniors {
		out = append(out, seniorSummary{
			ID:        s.ID,
			Name:      s.Name,
			Field:     s.Field,
			Role:      s.Role,
			Company:   s.Company,
			Undergrad: s.UndergradDegree,
			PreMBAExp: s.PreMBAExperienceYears,
			PreMBAInd: s.PreMBAIndustry,
			Bio:       s.Bio,
		})
	}
	return out
}

// BuildPrompt renders the matching instruction for one student and roster.
func BuildPrompt(student models.StudentProfile, seniors []models.SeniorProfile) (string, error) {
	rosterJSON, err := json.Marshal(summarize(seniors))
	if err != nil {
		return "", fmt.Errorf("marshal roster: %w", err)
	}

	var sb strings.Builder
	err = matchPromptTemplate.Execute(&sb, struct {
		Student models.StudentProfile
		Roster  string
	}{
		Student: student,
		Roster:  string(rosterJSON),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}
