package gradio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
)

var dataLinePattern = regexp.MustCompile(`(?s)data:\s*\[(.*?)\]`)

// Client talks to a Gradio-hosted model through its asynchronous call API:
// a submit request yields an event_id, the result is fetched with a second
// request after the model had time to run.
type Client struct {
	baseURL    string
	apiName    string
	pollDelay  time.Duration
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.Sentiment.BaseURL,
		apiName:   cfg.Sentiment.APIName,
		pollDelay: cfg.Sentiment.PollDelay,
		httpClient: &http.Client{
			Timeout: cfg.Sentiment.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	eventID, err := c.submit(ctx, text)
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(c.pollDelay):
	}

	body, err := c.fetch(ctx, eventID)
	if err != nil {
		return "", err
	}

	return ExtractLabel(body)
}

func (c *Client) submit(ctx context.Context, text string) (string, error) {
	payload := map[string]interface{}{
		"data": []string{text},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/gradio_api/call/%s", c.baseURL, c.apiName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var submitResponse struct {
		EventID string `json:"event_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&submitResponse); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if submitResponse.EventID == "" {
		return "", fmt.Errorf("response contains no event_id")
	}

	return submitResponse.EventID, nil
}

func (c *Client) fetch(ctx context.Context, eventID string) (string, error) {
	url := fmt.Sprintf("%s/gradio_api/call/%s/%s", c.baseURL, c.apiName, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	return string(body), nil
}

// ExtractLabel pulls the sentiment label out of the SSE-style result body.
// The model replies with a line like
//
//	data: ["Positive | Scores → {...}"]
//
// where the first |-delimited segment is the label. The body carries no
// schema guarantee, so this is a best-effort pattern match.
func ExtractLabel(body string) (string, error) {
	match := dataLinePattern.FindStringSubmatch(body)
	if match == nil {
		return "", fmt.Errorf("no data line in response")
	}

	content := strings.Trim(match[1], `" []`)
	label := strings.TrimSpace(strings.SplitN(content, "|", 2)[0])
	if label == "" {
		return "", fmt.Errorf("empty label in response")
	}

	return label, nil
}
