package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
	"unicode/utf8"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultTimeout = 30 * time.Second
)

// Model represents one entry from the models list endpoint.
type Model struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName,omitempty"`
	Description                string   `json:"description,omitempty"`
	InputTokenLimit            int      `json:"inputTokenLimit,omitempty"`
	OutputTokenLimit           int      `json:"outputTokenLimit,omitempty"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods,omitempty"`
}

// modelsResponse represents the response from the models list endpoint.
// A missing "models" key decodes as a nil slice, which callers treat as
// an empty listing rather than an error.
type modelsResponse struct {
	Models []Model `json:"models"`
}

// GeminiProvider lists models from the Google generative language API.
type GeminiProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeminiProvider creates a provider for the given API key. An empty
// baseURL selects the public endpoint and a zero timeout selects 30 seconds.
// An empty apiKey is allowed; the request is issued as-is and the server
// decides how to answer it.
func NewGeminiProvider(apiKey, baseURL string, timeout time.Duration) *GeminiProvider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GeminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// ListModels calls the models endpoint and decodes the result. The error is
// a *StatusError for non-2xx responses, a *DecodeError for non-UTF-8 bodies,
// a *ParseError for invalid JSON, or a wrapped transport error.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]Model, error) {
	url := p.baseURL + "/models?key=" + p.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !utf8.Valid(body) {
		return nil, &DecodeError{Offset: invalidUTF8Offset(body)}
	}

	var modelsResp modelsResponse
	if err := json.Unmarshal(body, &modelsResp); err != nil {
		return nil, &ParseError{Err: err}
	}

	return modelsResp.Models, nil
}

// ListModelNames fetches the model list and returns the names in their
// original order.
func (p *GeminiProvider) ListModelNames(ctx context.Context) ([]string, error) {
	models, err := p.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return ModelNames(models)
}

// ModelNames returns the name of each model in order. It stops at the first
// record with no name, returning the names gathered up to that point together
// with a *MissingFieldError identifying the record.
func ModelNames(models []Model) ([]string, error) {
	names := make([]string, 0, len(models))
	for i, m := range models {
		if m.Name == "" {
			return names, &MissingFieldError{Index: i, Field: "name"}
		}
		names = append(names, m.Name)
	}
	return names, nil
}

// invalidUTF8Offset returns the byte offset of the first invalid UTF-8
// sequence in b, or -1 if b is entirely valid.
func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
