package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"symptom-checker/pkg"
)

func TestNormalizeMalformedJSON(t *testing.T) {
	for _, raw := range []string{
		"",
		"Here are your results: fever is likely viral.",
		`{"summary": "unterminated`,
	} {
		out, err := Normalize(raw)
		require.Error(t, err, "raw=%q", raw)
		assert.Nil(t, out)

		var merr *MalformedResponseError
		require.True(t, errors.As(err, &merr), "raw=%q", raw)
		assert.Equal(t, raw, merr.Raw)
	}
}

func TestNormalizeNonObjectJSON(t *testing.T) {
	// Valid JSON that is not an object is unusable as an Analysis.
	_, err := Normalize(`["a", "b"]`)
	var merr *MalformedResponseError
	require.True(t, errors.As(err, &merr))
}

func TestNormalizeEmptyObjectDefaults(t *testing.T) {
	out, err := Normalize(`{}`)
	require.NoError(t, err)

	assert.Equal(t, DefaultSummary, out.Summary)
	assert.Equal(t, DefaultDisclaimer, out.Disclaimer)
	assert.Equal(t, pkg.UrgencyRoutine, out.Urgency)
	require.NotNil(t, out.Conditions)
	assert.Empty(t, out.Conditions)
	require.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
}

func TestNormalizeProbability(t *testing.T) {
	cases := map[string]string{
		"High":             pkg.ProbabilityHigh,
		"HIGH":             pkg.ProbabilityHigh,
		"high":             pkg.ProbabilityHigh,
		"High probability": pkg.ProbabilityHigh,
		"Medium":           pkg.ProbabilityMedium,
		"moderate":         pkg.ProbabilityMedium,
		"m":                pkg.ProbabilityMedium,
		"Low":              pkg.ProbabilityLow,
		"unlikely":         pkg.ProbabilityLow,
		"":                 pkg.ProbabilityLow,
		"???":              pkg.ProbabilityLow,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeProbability(in), "input=%q", in)
	}
}

func TestNormalizeProbabilityIdempotent(t *testing.T) {
	for _, in := range []string{"HIGH", "medium-ish", "none", ""} {
		once := NormalizeProbability(in)
		assert.Equal(t, once, NormalizeProbability(once))
	}
}

func TestNormalizeConditions(t *testing.T) {
	out, err := Normalize(`{
		"conditions": [
			{"name": "Influenza", "probability": "HIGH", "description": "seasonal flu"},
			{"probability": "moderate"},
			{"name": "Dehydration"}
		]
	}`)
	require.NoError(t, err)
	require.Len(t, out.Conditions, 3)

	assert.Equal(t, pkg.Condition{Name: "Influenza", Probability: pkg.ProbabilityHigh, Description: "seasonal flu"}, out.Conditions[0])
	assert.Equal(t, pkg.Condition{Name: "Unknown", Probability: pkg.ProbabilityMedium, Description: ""}, out.Conditions[1])
	assert.Equal(t, pkg.Condition{Name: "Dehydration", Probability: pkg.ProbabilityLow, Description: ""}, out.Conditions[2])
}

func TestNormalizeConditionsNotASequence(t *testing.T) {
	out, err := Normalize(`{"conditions": "probably a cold"}`)
	require.NoError(t, err)
	require.NotNil(t, out.Conditions)
	assert.Empty(t, out.Conditions)
}

func TestNormalizeRecommendations(t *testing.T) {
	t.Run("sequence kept as-is", func(t *testing.T) {
		out, err := Normalize(`{"recommendations": ["rest", "drink fluids"]}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"rest", "drink fluids"}, out.Recommendations)
	})

	t.Run("scalar wrapped", func(t *testing.T) {
		out, err := Normalize(`{"recommendations": "see a doctor"}`)
		require.NoError(t, err)
		assert.Equal(t, []string{"see a doctor"}, out.Recommendations)
	})

	t.Run("absent becomes empty", func(t *testing.T) {
		out, err := Normalize(`{"summary": "x"}`)
		require.NoError(t, err)
		require.NotNil(t, out.Recommendations)
		assert.Empty(t, out.Recommendations)
	})
}

func TestNormalizeUrgency(t *testing.T) {
	cases := map[string]string{
		`{"urgency": "EMERGENCY"}`: pkg.UrgencyEmergency,
		`{"urgency": "Urgent"}`:    pkg.UrgencyUrgent,
		`{"urgency": "self-care"}`: pkg.UrgencySelfCare,
		`{"urgency": "whenever"}`:  pkg.UrgencyRoutine,
		`{"urgency": 3}`:           pkg.UrgencyRoutine,
		`{}`:                       pkg.UrgencyRoutine,
	}
	for raw, want := range cases {
		out, err := Normalize(raw)
		require.NoError(t, err, "raw=%s", raw)
		assert.Equal(t, want, out.Urgency, "raw=%s", raw)
	}
}

func TestNormalizeBlankSummaryAndDisclaimer(t *testing.T) {
	out, err := Normalize(`{"summary": "   ", "disclaimer": ""}`)
	require.NoError(t, err)
	assert.Equal(t, DefaultSummary, out.Summary)
	assert.Equal(t, DefaultDisclaimer, out.Disclaimer)
}
