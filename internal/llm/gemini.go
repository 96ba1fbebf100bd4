package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// Available reports whether the underlying client was created
func (c *GeminiClient) Available() bool {
	return c != nil && c.client != nil
}

// Complete generates text with the first available model. System messages
// become the model's system instruction; the rest are sent as prompt parts.
func (c *GeminiClient) Complete(ctx context.Context, models []string, messages []Message, temperature float32) (*Completion, error) {
	system, parts := splitGeminiMessages(messages)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no user content to send")
	}

	return CompleteWithFallback(ctx, models, func(ctx context.Context, modelName string) (*Completion, error) {
		model := c.client.GenerativeModel(modelName)
		model.SetTemperature(temperature)
		if system != "" {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
		}

		resp, err := model.GenerateContent(ctx, parts...)
		if err != nil {
			if isGeminiModelError(err) {
				return nil, &ModelUnavailableError{Model: modelName, Cause: err}
			}
			return nil, fmt.Errorf("failed to generate content: %w", err)
		}

		text, err := extractTextFromResponse(resp)
		if err != nil {
			return nil, err
		}
		return &Completion{Text: text, Model: modelName}, nil
	})
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func splitGeminiMessages(messages []Message) (string, []genai.Part) {
	var system []string
	var parts []genai.Part
	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		if msg.Role == RoleSystem {
			system = append(system, msg.Content)
			continue
		}
		parts = append(parts, genai.Text(msg.Content))
	}
	return strings.Join(system, "\n\n"), parts
}

// isGeminiModelError matches unknown models on both the REST and gRPC
// transports. A permission error counts only when its message is about the
// model; a disabled API or restricted key fails every model alike.
func isGeminiModelError(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return true
		case http.StatusForbidden:
			return mentionsModel(apiErr.Message)
		}
		return false
	}
	switch st := status.Convert(err); st.Code() {
	case codes.NotFound:
		return true
	case codes.PermissionDenied:
		return mentionsModel(st.Message())
	}
	return false
}

func mentionsModel(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "model")
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
