package llm

import (
	"amora/amora/utils/logging"
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// Turn is one message of the conversational context sent to the model.
// Role is "user" or "model".
type Turn struct {
	Role string
	Text string
}

// Generator produces one reply for a composed conversation. Implemented
// by GeminiClient; tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, system string, turns []Turn) (string, error)
}

type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model, timeout: timeout}, nil
}

// Generate sends the instruction and ordered turns to Gemini and returns
// the first candidate's text. Any transport error, timeout or empty
// candidate is reported as an error; the caller owns the fallback.
func (c *GeminiClient) Generate(ctx context.Context, system string, turns []Turn) (string, error) {
	defer logging.LogDuration(ctx, "gemini_generate")()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		var role genai.Role = genai.RoleUser
		if t.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(t.Text, role))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents,
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned no usable candidate")
	}
	return text, nil
}
