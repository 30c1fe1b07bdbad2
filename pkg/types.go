package pkg

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SymptomInput is the request body for an analysis.  Only the free-text
// symptom description is required; the remaining fields give the model
// extra context when the caller supplies them.
type SymptomInput struct {
	Symptoms string `json:"symptoms" bson:"symptoms"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	Gender   string `json:"gender,omitempty" bson:"gender,omitempty"`
	Duration string `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Accepted gender literals.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Probability levels for a Condition.  Normalization guarantees every
// stored or returned condition carries exactly one of these.
const (
	ProbabilityHigh   = "High"
	ProbabilityMedium = "Medium"
	ProbabilityLow    = "Low"
)

// Urgency levels for an Analysis.
const (
	UrgencyEmergency = "emergency"
	UrgencyUrgent    = "urgent"
	UrgencyRoutine   = "routine"
	UrgencySelfCare  = "self-care"
)

// Condition is one possible explanation for the described symptoms.
type Condition struct {
	Name        string `json:"name" bson:"name"`
	Probability string `json:"probability" bson:"probability"`
	Description string `json:"description" bson:"description"`
}

// Analysis is the normalized result of one symptom analysis.  It is
// immutable after normalization: Conditions and Recommendations are
// always non-nil and the enum fields always hold a valid literal.
type Analysis struct {
	Summary         string      `json:"summary" bson:"summary"`
	Conditions      []Condition `json:"conditions" bson:"conditions"`
	Recommendations []string    `json:"recommendations" bson:"recommendations"`
	Urgency         string      `json:"urgency" bson:"urgency"`
	Disclaimer      string      `json:"disclaimer" bson:"disclaimer"`
}

// HistoryRecord is the persisted pairing of one request's input and its
// normalized analysis.  CreatedAt is stamped by the store in UTC and is
// the sort key for listing.
type HistoryRecord struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Input     SymptomInput       `json:"input" bson:"input"`
	Result    Analysis           `json:"result" bson:"result"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// HistoryItem is the client-facing form of a HistoryRecord: the store
// identifier rendered as hex text and the creation time in RFC 3339 UTC.
type HistoryItem struct {
	ID        string       `json:"id"`
	Input     SymptomInput `json:"input"`
	Result    Analysis     `json:"result"`
	CreatedAt time.Time    `json:"created_at"`
}
