package core

// prompts.go defines the fixed instruction prompt sent with every
// analysis request and the template for the user message.  Keeping these
// in a separate file makes them easy to tweak without touching the rest
// of the code.

import (
	"fmt"
	"strconv"

	"symptom-checker/pkg"
)

// SystemPrompt instructs the model to answer with a single JSON object
// matching the Analysis shape.  It forbids markdown and extra prose so
// the reply can be parsed directly.
const SystemPrompt = `You are a medical symptom analysis assistant.
Return ONLY JSON.

Start with:
"Based on these symptoms, here are possible conditions and next steps (educational only)."

{
  "summary": "string",
  "conditions": [
    {"name": "string", "probability": "High | Medium | Low", "description": "string"}
  ],
  "recommendations": ["string"],
  "urgency": "emergency | urgent | routine | self-care",
  "disclaimer": "string"
}

No markdown, no extra text. Do not make diagnostic claims.`

// notProvided marks optional fields the caller left out.  They are
// rendered explicitly rather than silently omitted so the model sees a
// stable message shape.
const notProvided = "not provided"

// BuildUserMessage renders a validated input one field per line.
func BuildUserMessage(in *pkg.SymptomInput) string {
	age := notProvided
	if in.Age != nil {
		age = strconv.Itoa(*in.Age)
	}
	gender := in.Gender
	if gender == "" {
		gender = notProvided
	}
	duration := in.Duration
	if duration == "" {
		duration = notProvided
	}
	return fmt.Sprintf("Symptoms: %s\nAge: %s\nGender: %s\nDuration: %s",
		in.Symptoms, age, gender, duration)
}
