// Package coach talks to the external language-model coaching service. It is
// strictly a boundary collaborator: failures surface as an error and never
// touch the metrics path.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Oussamaberchi/Quickkt/internal"
)

// Client produces one supportive reply for the conversation so far.
type Client interface {
	Reply(ctx context.Context, history []internal.ChatMessage, lang string) (string, error)
}

type wireMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type replyRequest struct {
	Messages []wireMessage `json:"messages"`
	Language string        `json:"language"`
}

type replyResponse struct {
	Text string `json:"text"`
}

// HTTPClient posts the chat history to the configured coaching endpoint.
type HTTPClient struct {
	ServiceURL string
	HTTPClient *http.Client
	logger     internal.Logger
}

func NewHTTPClient(url string, timeout time.Duration, logger internal.Logger) *HTTPClient {
	return &HTTPClient{
		ServiceURL: url,
		HTTPClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *HTTPClient) Reply(ctx context.Context, history []internal.ChatMessage, lang string) (string, error) {
	if c.ServiceURL == "" {
		return "", errors.New("coach: no service URL configured")
	}

	payload := replyRequest{Language: lang, Messages: make([]wireMessage, 0, len(history))}
	for _, m := range history {
		payload.Messages = append(payload.Messages, wireMessage{Role: string(m.Role), Text: m.Text})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.ServiceURL, bytes.NewReader(body))
	if err != nil {
		c.logger.Errorf("coach: failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.logger.Errorf("coach: request failed: %v", err)
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.logger.Errorf("coach: service returned %d", resp.StatusCode)
		return "", errors.New("coach: service returned non-200")
	}

	var out replyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.logger.Errorf("coach: failed to decode response: %v", err)
		return "", err
	}
	return out.Text, nil
}

var _ Client = (*HTTPClient)(nil)
