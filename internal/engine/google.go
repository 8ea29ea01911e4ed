package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// googleEndpoint is the free web translation endpoint.
const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleClient implements TranslationClient against the free Google web
// endpoint. No API key is required; long texts are sent as form data.
type GoogleClient struct {
	endpoint   string
	httpClient *http.Client
}

// GoogleOption configures the Google client.
type GoogleOption func(*GoogleClient)

// WithGoogleTimeout sets the outgoing request timeout.
func WithGoogleTimeout(d time.Duration) GoogleOption {
	return func(c *GoogleClient) { c.httpClient.Timeout = d }
}

// WithGoogleEndpoint overrides the translation endpoint (for tests).
func WithGoogleEndpoint(endpoint string) GoogleOption {
	return func(c *GoogleClient) { c.endpoint = endpoint }
}

// NewGoogleClient creates a new Google translation client.
func NewGoogleClient(opts ...GoogleOption) *GoogleClient {
	c := &GoogleClient{
		endpoint: googleEndpoint,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Translate sends the text to the endpoint and joins the returned segments.
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	form := url.Values{
		"client": {"gtx"},
		"sl":     {sourceLang},
		"tl":     {targetLang},
		"dt":     {"t"},
		"q":      {text},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &apiError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return decodeGoogleResponse(body)
}

// decodeGoogleResponse unpacks the endpoint's nested-array payload: the
// first element is a list of segments, each led by its translated text.
func decodeGoogleResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation payload")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translation payload shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if text, ok := parts[0].(string); ok {
			b.WriteString(text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no translated segments in payload")
	}
	return b.String(), nil
}

// apiError is a non-2xx response from a translation backend.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}
