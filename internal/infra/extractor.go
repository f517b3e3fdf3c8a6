package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ChatMessage is one turn of a chat-completions conversation. Content is a
// plain string for text-only turns or a []ContentPart when the turn carries
// an image.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal message content array.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL carries an image as a data URI or a remote URL.
type ImageURL struct {
	URL string `json:"url"`
}

// chatRequest is the OpenAI-compatible chat completions payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatResponse covers the subset of the completions response we read. Reply
// content is always plain text, never a content array.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractorClient talks to an OpenAI-compatible chat completions endpoint.
// The provider is interchangeable (OpenAI, proxy, local) as long as it speaks
// the /chat/completions protocol.
type ExtractorClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewExtractorClient(baseURL, apiKey, model string) *ExtractorClient {
	return &ExtractorClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Complete sends the conversation and returns the assistant's raw text reply.
func (c *ExtractorClient) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("extractor: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("extractor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("extractor: provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("extractor: provider returned %d", resp.StatusCode)
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("extractor: decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("extractor: empty choices in response")
	}
	return result.Choices[0].Message.Content, nil
}
