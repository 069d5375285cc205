package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MustafaAKbulut55/fullstack-ai-chat/internal/config"
)

type Client struct {
	baseURL    string
	sourceLang string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:    cfg.Translate.BaseURL,
		sourceLang: cfg.Translate.SourceLang,
		httpClient: &http.Client{
			Timeout: cfg.Translate.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

type translationResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
}

// Translate requests an English translation of text. The caller decides what
// to do when translation fails; the original text is never substituted here.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", fmt.Sprintf("%s|en", c.sourceLang))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+params.Encode(), nil)
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

	var data translationResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if data.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("response contains no translated text")
	}

	return data.ResponseData.TranslatedText, nil
}
