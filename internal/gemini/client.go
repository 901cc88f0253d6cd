package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clau-backend/internal/models"
	"clau-backend/internal/services"
)

const (
	// DefaultBaseURL is the public Generative Language API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the model the product is pinned to.
	DefaultModel = "gemini-2.5-flash"

	defaultTimeout = 60 * time.Second
)

// Client calls the generateContent endpoint over plain HTTP. The request
// body carries exactly the conversation it is given: a Turn's wire shape is
// already the API's content shape, so no translation happens here.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey, model, baseURL string, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []models.Turn `json:"contents"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content candidateContent `json:"content"`
}

type candidateContent struct {
	Parts []candidatePart `json:"parts"`
}

type candidatePart struct {
	Text string `json:"text"`
}

// errorBody is the API's error envelope: {"error": {"message": "..."}}.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the conversation to the model and returns the first
// candidate's first part text. An unset API key fails the call before any
// network activity; the key itself never appears in the URL or in error
// messages.
func (c *Client) Generate(ctx context.Context, contents []models.Turn) (string, error) {
	if c.apiKey == "" {
		return "", &services.ConfigurationError{Message: "Gemini API key is not set"}
	}

	body, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &services.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &services.UpstreamError{StatusCode: resp.StatusCode, Message: "failed to read response body"}
	}

	if resp.StatusCode != http.StatusOK {
		msg := strings.TrimSpace(string(respBody))
		var apiErr errorBody
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return "", &services.UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", &services.UpstreamError{StatusCode: resp.StatusCode, Message: "invalid JSON in upstream response"}
	}

	return extractAnswer(&out)
}

// extractAnswer depends only on the first candidate's first part carrying
// text; everything else in the response is ignored. A 2xx body without
// usable text (empty candidates, safety-filtered reply) is an error, never
// an empty answer.
func extractAnswer(resp *generateResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &services.EmptyResponseError{Message: "no candidates in model response"}
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &services.EmptyResponseError{Message: "no parts in model response"}
	}
	if parts[0].Text == "" {
		return "", &services.EmptyResponseError{Message: "empty text in model response"}
	}
	return parts[0].Text, nil
}
