package core

import (
	"strings"

	"symptom-checker/pkg"
)

// ValidateInput accepts a SymptomInput only if the symptom text is
// non-blank, the age (when present) is non-negative, and the gender
// (when present) is one of the accepted literals.  The first violation
// found is returned as a ValidationError.
func ValidateInput(in *pkg.SymptomInput) error {
	if strings.TrimSpace(in.Symptoms) == "" {
		return &ValidationError{Field: "symptoms", Msg: "cannot be empty"}
	}
	if in.Age != nil && *in.Age < 0 {
		return &ValidationError{Field: "age", Msg: "must be non-negative"}
	}
	switch in.Gender {
	case "", pkg.GenderMale, pkg.GenderFemale, pkg.GenderOther:
	default:
		return &ValidationError{Field: "gender", Msg: "must be one of male, female, other"}
	}
	return nil
}
