package models

type TargetField string

const (
	FieldConsulting        TargetField = "Consulting"
	FieldFinance           TargetField = "Finance"
	FieldMarketing         TargetField = "Marketing"
	FieldOperations        TargetField = "Operations"
	FieldGeneralManagement TargetField = "General Management"
	FieldHR                TargetField = "HR"
	FieldProductManagement TargetField = "Product Management"
)

type TargetFieldOption struct {
	Value TargetField `json:"value"`
	Label string      `json:"label"`
}

// 폼 선택지 순서 그대로 유지
var targetFields = []TargetFieldOption{
	{Value: FieldConsulting, Label: "Consulting (Strategy, Ops, Tech)"},
	{Value: FieldFinance, Label: "Finance (IB, PE, Markets, Corp Fin)"},
	{Value: FieldMarketing, Label: "Marketing (FMCG, Tech, Digital)"},
	{Value: FieldOperations, Label: "Operations & Supply Chain"},
	{Value: FieldGeneralManagement, Label: "General Management"},
	{Value: FieldHR, Label: "Human Resources"},
	{Value: FieldProductManagement, Label: "Product Management"},
}

func TargetFields() []TargetFieldOption {
	out := make([]TargetFieldOption, len(targetFields))
	copy(out, targetFields)
	return out
}

func GetTargetField(value string) (TargetFieldOption, bool) {
	for _, f := range targetFields {
		if string(f.Value) == value {
			return f, true
		}
	}
	return TargetFieldOption{}, false
}
