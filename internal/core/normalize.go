package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"symptom-checker/pkg"
)

// Defaults substituted when the model omits or blanks a field.
const (
	DefaultSummary    = "Based on these symptoms..."
	DefaultDisclaimer = "Educational only."

	defaultConditionName = "Unknown"
)

// Normalize parses raw model output as JSON and coerces it into a valid
// Analysis.  A parse failure is the only unrecoverable case; every other
// defect is repaired field by field, with no rule depending on another
// field's outcome.  The model's output is treated as untrusted input
// throughout: wrong types, missing keys, and free-form enum values all
// collapse to schema-conforming defaults.
func Normalize(raw string) (*pkg.Analysis, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return &pkg.Analysis{
		Summary:         stringOr(doc["summary"], DefaultSummary),
		Conditions:      normalizeConditions(doc["conditions"]),
		Recommendations: normalizeRecommendations(doc["recommendations"]),
		Urgency:         normalizeUrgency(doc["urgency"]),
		Disclaimer:      stringOr(doc["disclaimer"], DefaultDisclaimer),
	}, nil
}

// NormalizeProbability classifies a free-form probability value by its
// first character, case-insensitively: "h..." is High, "m..." is Medium,
// anything else (including empty) is Low.  Deliberately permissive so
// values like "High probability" still land in a bucket.
func NormalizeProbability(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	switch {
	case strings.HasPrefix(p, "h"):
		return pkg.ProbabilityHigh
	case strings.HasPrefix(p, "m"):
		return pkg.ProbabilityMedium
	default:
		return pkg.ProbabilityLow
	}
}

func stringOr(v any, def string) string {
	s, _ := v.(string)
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// normalizeConditions rebuilds each entry of the given sequence as a
// valid Condition.  A value that is not a sequence is treated as empty.
func normalizeConditions(v any) []pkg.Condition {
	entries, _ := v.([]any)
	out := make([]pkg.Condition, 0, len(entries))
	for _, e := range entries {
		fields, _ := e.(map[string]any)
		name, _ := fields["name"].(string)
		if name == "" {
			name = defaultConditionName
		}
		prob, _ := fields["probability"].(string)
		desc, _ := fields["description"].(string)
		out = append(out, pkg.Condition{
			Name:        name,
			Probability: NormalizeProbability(prob),
			Description: desc,
		})
	}
	return out
}

// normalizeRecommendations always yields a sequence: a scalar is wrapped
// as a single element, anything absent becomes empty.
func normalizeRecommendations(v any) []string {
	switch recs := v.(type) {
	case nil:
		return []string{}
	case []any:
		out := make([]string, 0, len(recs))
		for _, r := range recs {
			if s, ok := r.(string); ok {
				out = append(out, s)
			} else {
				out = append(out, fmt.Sprint(r))
			}
		}
		return out
	case string:
		return []string{recs}
	default:
		return []string{fmt.Sprint(recs)}
	}
}

// normalizeUrgency lowercases the given value and keeps it only if it is
// one of the four urgency literals; everything else becomes routine.
func normalizeUrgency(v any) string {
	u, _ := v.(string)
	u = strings.ToLower(strings.TrimSpace(u))
	switch u {
	case pkg.UrgencyEmergency, pkg.UrgencyUrgent, pkg.UrgencyRoutine, pkg.UrgencySelfCare:
		return u
	}
	return pkg.UrgencyRoutine
}
