package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"VeracityScanner/internal/config"
	"VeracityScanner/internal/domain"
	"VeracityScanner/internal/ports"
)

// Client talks to an external model service for sentiment and emotion
// classification. It backs the advanced analysis tiers.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

var _ ports.SentimentClassifier = (*Client)(nil)
var _ ports.EmotionClassifier = (*Client)(nil)

// NewClient creates a reusable HTTP client from configuration.
func NewClient(cfg config.InferenceConfig) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout()},
	}
}

// Ping verifies the service is reachable; used as the capability probe.
func (c *Client) Ping(ctx context.Context) error {
	if c.endpoint == "" {
		return fmt.Errorf("inference endpoint is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping inference service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference service returned %s", resp.Status)
	}

	return nil
}

// ClassifySentiment sends the text for a single-label sentiment score.
func (c *Client) ClassifySentiment(ctx context.Context, text string) (domain.LabelScore, error) {
	var resp struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}

	if err := c.post(ctx, "/sentiment", map[string]any{"text": text}, &resp); err != nil {
		return domain.LabelScore{}, err
	}

	return domain.LabelScore{Label: resp.Label, Score: resp.Score}, nil
}

// ClassifyEmotions sends the text for ranked emotion labels, best first.
func (c *Client) ClassifyEmotions(ctx context.Context, text string) ([]domain.LabelScore, error) {
	var resp struct {
		Labels []domain.LabelScore `json:"labels"`
	}

	if err := c.post(ctx, "/emotions", map[string]any{"text": text}, &resp); err != nil {
		return nil, err
	}

	return resp.Labels, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
