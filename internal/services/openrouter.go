package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

const (
	completionTemperature = 0.7
	completionMaxTokens   = 4000
)

const systemPrompt = "You are an expert quiz generator. You always answer with a single valid JSON array and nothing else."

// OpenRouterClient talks to an OpenRouter-compatible chat-completion API.
type OpenRouterClient struct {
	client *openai.Client
}

// headerTransport injects the attribution headers OpenRouter uses for app
// rankings into every outbound request.
type headerTransport struct {
	referer string
	title   string
	base    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("HTTP-Referer", t.referer)
	req.Header.Set("X-Title", t.title)
	return t.base.RoundTrip(req)
}

func NewOpenRouterClient(apiKey, baseURL, referer, title string) *OpenRouterClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Transport: &headerTransport{referer: referer, title: title, base: http.DefaultTransport},
	}
	return &OpenRouterClient{client: openai.NewClientWithConfig(cfg)}
}

// Complete issues one chat completion against the given model and returns the
// raw text content of the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyAPIError(model, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewError(KindTransport, fmt.Sprintf("model %s returned no content", model))
	}

	return resp.Choices[0].Message.Content, nil
}

func classifyAPIError(model string, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(KindTimeout, fmt.Sprintf("model %s timed out", model), err)
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return WrapError(KindRateLimited, fmt.Sprintf("model %s is rate limited", model), err)
		}
		return WrapError(KindTransport, fmt.Sprintf("model %s returned HTTP %d", model, apiErr.HTTPStatusCode), err)
	}

	return WrapError(KindTransport, fmt.Sprintf("model %s request failed", model), err)
}
