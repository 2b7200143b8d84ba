package explainer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com"
	DefaultModel    = "gemini-pro"
)

// UnavailableError wraps any failure to get an explanation out of the
// text-generation service. Callers are expected to degrade to a table-only
// result rather than abort.
type UnavailableError struct {
	Reason error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("explanation service unavailable: %v", e.Reason)
}

func (e *UnavailableError) Unwrap() error {
	return e.Reason
}

func unavailable(format string, a ...any) error {
	return &UnavailableError{Reason: fmt.Errorf(format, a...)}
}

// Service asks a generateContent endpoint for a natural-language explanation
// of a solved expression.
type Service struct {
	endpoint     string
	model        string
	apiKey       string
	roundTripper http.RoundTripper
}

// New creates a new Service using the provided http.RoundTripper to make
// requests.
// Usage:
//
//	import "net/http"
//	var s = explainer.New(explainer.DefaultEndpoint, explainer.DefaultModel, apiKey, http.DefaultTransport)
func New(endpoint, model, apiKey string, roundTripper http.RoundTripper) *Service {
	return &Service{
		endpoint:     endpoint,
		model:        model,
		apiKey:       apiKey,
		roundTripper: roundTripper,
	}
}

// request/response shapes of the generateContent API
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Explain sends the expression, its rendered truth table and the step legend
// to the model and returns the generated explanation. Every failure comes
// back as an *UnavailableError; the inputs are treated as opaque text.
func (s *Service) Explain(expression, table, steps string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(expression, table, steps)}}}},
	})
	if err != nil {
		return "", unavailable("failed to encode request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.endpoint, s.model, s.apiKey)
	request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", unavailable("failed to create HTTP request object: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := s.roundTripper.RoundTrip(request)
	if err != nil {
		return "", unavailable("failed to execute HTTP request: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", unavailable("unexpected status %s", response.Status)
	}

	var parsed generateResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", unavailable("failed to parse response body: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", unavailable("response contained no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func buildPrompt(expression, table, steps string) string {
	return fmt.Sprintf(`As a discrete mathematics expert, explain the following logical expression and its solution:

Expression: %s

Truth Table:
%s

Step-by-step evaluation:
%s

Please provide:
1. A brief explanation of what the expression means
2. How to read and interpret the truth table
3. An explanation of each step in the evaluation process
4. The final conclusion about when the expression is true/false

Keep the explanation clear and concise. Remove markdown and use only Russian language for explanation.`,
		expression, table, steps)
}
