package models

// 신입생 프로필, 제출 시점에 생성되고 이후 변경되지 않음
type StudentProfile struct {
	Name                string  `json:"name" form:"name" validate:"notblank"`
	UndergradDegree     string  `json:"undergradDegree" form:"undergradDegree" validate:"notblank"`
	WorkExperienceYears float64 `json:"workExperienceYears" form:"workExperienceYears" validate:"finite,gte=0"`
	PrevCompany         string  `json:"prevCompany" form:"prevCompany"`
	PrevRole            string  `json:"prevRole" form:"prevRole"`
	TargetField         string  `json:"targetField" form:"targetField" validate:"targetfield"`
	Skills              string  `json:"skills" form:"skills" validate:"notblank"`
	Hobbies             string  `json:"hobbies" form:"hobbies"`
}

// DefaultStudentProfile is what an empty intake form starts with.
func DefaultStudentProfile() StudentProfile {
	return StudentProfile{TargetField: string(FieldConsulting)}
}
