package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptom-checker/pkg"
)

func intPtr(v int) *int { return &v }

func TestValidateInputSymptoms(t *testing.T) {
	for _, symptoms := range []string{"", "   ", "\t\n"} {
		err := ValidateInput(&pkg.SymptomInput{Symptoms: symptoms})
		require.Error(t, err, "symptoms=%q", symptoms)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "symptoms", verr.Field)
	}

	assert.NoError(t, ValidateInput(&pkg.SymptomInput{Symptoms: "persistent headache"}))
}

func TestValidateInputAge(t *testing.T) {
	err := ValidateInput(&pkg.SymptomInput{Symptoms: "fever", Age: intPtr(-1)})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "age", verr.Field)

	assert.NoError(t, ValidateInput(&pkg.SymptomInput{Symptoms: "fever", Age: intPtr(0)}))
	assert.NoError(t, ValidateInput(&pkg.SymptomInput{Symptoms: "fever", Age: intPtr(87)}))
}

func TestValidateInputGender(t *testing.T) {
	for _, gender := range []string{"male", "female", "other", ""} {
		assert.NoError(t, ValidateInput(&pkg.SymptomInput{Symptoms: "fever", Gender: gender}))
	}

	err := ValidateInput(&pkg.SymptomInput{Symptoms: "fever", Gender: "Male"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "gender", verr.Field)
}
