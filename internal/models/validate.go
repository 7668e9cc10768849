package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// required는 공백만 있는 문자열을 통과시키므로 별도 규칙 사용
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	// strconv은 "Inf", "NaN"도 float으로 파싱함
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
	_ = v.RegisterValidation("targetfield", func(fl validator.FieldLevel) bool {
		_, ok := GetTargetField(fl.Field().String())
		return ok
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors maps a profile field (json name) to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "invalid student profile: " + strings.Join(parts, "; ")
}

// Normalized returns a copy with surrounding whitespace trimmed from every text field.
func (p StudentProfile) Normalized() StudentProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.UndergradDegree = strings.TrimSpace(p.UndergradDegree)
	p.PrevCompany = strings.TrimSpace(p.PrevCompany)
	p.PrevRole = strings.TrimSpace(p.PrevRole)
	p.TargetField = strings.TrimSpace(p.TargetField)
	p.Skills = strings.TrimSpace(p.Skills)
	p.Hobbies = strings.TrimSpace(p.Hobbies)
	return p
}

// Validate checks the intake rules. A non-nil error is always FieldErrors.
func (p StudentProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"profile": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank":
		return "This field is required"
	case "finite":
		return "Must be a number"
	case "gte":
		return "Must be zero or more"
	case "targetfield":
		return "Choose one of the listed career tracks"
	default:
		return "Invalid value"
	}
}
