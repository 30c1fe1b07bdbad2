package core

import (
	"context"

	"symptom-checker/internal/llm"
	"symptom-checker/pkg"
)

// AnalysisService orchestrates one symptom analysis: validate the input,
// render the prompt, ask the model, repair its answer.  Persistence is
// the caller's concern; the service itself is stateless.
type AnalysisService struct {
	LLM llm.Client
}

// NewAnalysisService constructs an AnalysisService with the given
// completion client.
func NewAnalysisService(client llm.Client) *AnalysisService {
	return &AnalysisService{LLM: client}
}

// Analyze runs the full pipeline for a single request.  Invalid input
// returns a ValidationError before any outbound call is made; gateway
// and parse failures propagate unchanged for the HTTP layer to map.
func (s *AnalysisService) Analyze(ctx context.Context, in *pkg.SymptomInput) (*pkg.Analysis, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}
	raw, err := s.LLM.Complete(ctx, SystemPrompt, BuildUserMessage(in))
	if err != nil {
		return nil, err
	}
	return Normalize(raw)
}
