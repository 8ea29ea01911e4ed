package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LibreTranslateClient implements TranslationClient against a self-hosted
// LibreTranslate instance.
type LibreTranslateClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// LibreTranslateOption configures the LibreTranslate client.
type LibreTranslateOption func(*LibreTranslateClient)

// WithLibreTranslateKey sets the API key.
func WithLibreTranslateKey(key string) LibreTranslateOption {
	return func(c *LibreTranslateClient) { c.apiKey = key }
}

// WithLibreTranslateTimeout sets the outgoing request timeout.
func WithLibreTranslateTimeout(d time.Duration) LibreTranslateOption {
	return func(c *LibreTranslateClient) { c.httpClient.Timeout = d }
}

// NewLibreTranslateClient creates a new LibreTranslate client.
func NewLibreTranslateClient(baseURL string, opts ...LibreTranslateOption) *LibreTranslateClient {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	c := &LibreTranslateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type libreTranslateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

// Translate sends the text to the /translate endpoint.
func (c *LibreTranslateClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	body, err := json.Marshal(libreTranslateRequest{
		Q:      text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &apiError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var ltResp libreTranslateResponse
	if err := json.Unmarshal(respBody, &ltResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if ltResp.Error != "" {
		return "", fmt.Errorf("libretranslate error: %s", ltResp.Error)
	}
	if ltResp.TranslatedText == "" {
		return "", fmt.Errorf("empty response from libretranslate")
	}
	return ltResp.TranslatedText, nil
}
