package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextGenerator is the single capability the intake pipeline needs from a language model.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

var ErrEmptyResponse = errors.New("model returned no candidates")

type GeminiClient struct {
	client    *genai.Client
	modelName string
	model     *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.2)
	return &GeminiClient{client: client, modelName: modelName, model: model}, nil
}

// JSON returns a generator sharing the same connection that asks the model for a
// JSON response body.
func (g *GeminiClient) JSON() *GeminiClient {
	model := g.client.GenerativeModel(g.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	return &GeminiClient{client: g.client, modelName: g.modelName, model: model}
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return responseText(resp)
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
