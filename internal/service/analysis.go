package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrMissingCredential = errors.New("AI credential is not configured; set it under settings")
	ErrNothingToAnalyze  = errors.New("select an alert or dataset before requesting an analysis")
)

// Generator produces advisory text for a prompt. Implemented by advisor.Gemini.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// CredentialStore resolves the credential used by the generator.
type CredentialStore interface {
	Credential(ctx context.Context) (string, error)
}

// AnalysisResult is the advisory text plus the prompt it answered.
type AnalysisResult struct {
	Text        string    `json:"text"`
	Prompt      string    `json:"prompt"`
	GeneratedAt time.Time `json:"generated_at"`
}

type AnalysisService struct {
	frames *FrameSync
	creds  CredentialStore
	gen    Generator
	now    func() time.Time
}

func NewAnalysisService(frames *FrameSync, creds CredentialStore, gen Generator) *AnalysisService {
	return &AnalysisService{frames: frames, creds: creds, gen: gen, now: time.Now}
}

// Analyze asks the generator about the current selection. A missing
// credential fails before any network call.
func (s *AnalysisService) Analyze(ctx context.Context) (AnalysisResult, error) {
	key, err := s.creds.Credential(ctx)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("load credential: %w", err)
	}
	if strings.TrimSpace(key) == "" {
		return AnalysisResult{}, ErrMissingCredential
	}

	st := s.frames.State()
	if st.Dataset == "" {
		return AnalysisResult{}, ErrNothingToAnalyze
	}
	prompt := buildPrompt(st, s.now())

	text, err := s.gen.Generate(ctx, key, prompt)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("generate analysis: %w", err)
	}
	return AnalysisResult{Text: text, Prompt: prompt, GeneratedAt: s.now().UTC()}, nil
}

// buildPrompt describes the incident. Field statistics are used when a frame
// is displayed, otherwise the alert's recorded peak.
func buildPrompt(st ViewState, now time.Time) string {
	var b strings.Builder
	b.WriteString("Act as an expert industrial thermal analysis engineer. Analyze the following turbine incident:\n")
	fmt.Fprintf(&b, "- File: %s\n", st.Dataset)

	switch {
	case st.Displayed != nil:
		d := st.Displayed
		fmt.Fprintf(&b, "- Frame: %d\n", d.FrameIndex)
		fmt.Fprintf(&b, "- Max temperature: %.1f°C, average: %.1f°C, differential: %.1f°C\n", d.MaxTemp, d.AvgTemp, d.MaxTemp-d.MinTemp)
	case st.Alert != nil:
		fmt.Fprintf(&b, "- Recorded max temperature: %.1f°C (detailed matrix data unavailable)\n", st.Alert.MaxTemp)
	default:
		b.WriteString("- Temperature data unavailable\n")
	}

	ts := now.UTC()
	if st.Alert != nil {
		fmt.Fprintf(&b, "- Turbine ID: %s\n", st.Alert.TurbineToken)
		fmt.Fprintf(&b, "- Angle: %.1f°\n", st.Alert.Angle)
		ts = time.Unix(st.Alert.Timestamp, 0).UTC()
	}
	fmt.Fprintf(&b, "- Timestamp: %s\n\n", ts.Format(time.RFC3339))
	b.WriteString("Give a brief diagnosis (max 3 lines) of the likely cause of overheating and an immediate recommendation.")
	return b.String()
}
