package models

// 멘토 선배 프로필, 정적 로스터에서만 생성됨 (읽기 전용)
type SeniorProfile struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Field                 string   `json:"field"`
	Company               string   `json:"company"`
	Role                  string   `json:"role"`
	UndergradDegree       string   `json:"undergradDegree"`
	PreMBAExperienceYears float64  `json:"preMbaExperienceYears"`
	PreMBAIndustry        string   `json:"preMbaIndustry"`
	ClubsAndCommittees    []string `json:"clubsAndCommittees"`
	Bio                   string   `json:"bio"`
}
