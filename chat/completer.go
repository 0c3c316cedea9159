package chat

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when GEMINI_MODEL is empty.
const DefaultModel = "gemini-2.5-flash"

// NotConfiguredReply is the answer given when no API key is configured.
const NotConfiguredReply = "Lo siento, mi conexión con la IA no está configurada. Por favor, verifica la clave de API."

// ErrEmptyCompletion is returned when the service answers with no text.
var ErrEmptyCompletion = errors.New("completion returned no text")

// Completer turns one assembled prompt into reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// GenAICompleter calls the Gemini API through google.golang.org/genai.
type GenAICompleter struct {
	client *genai.Client
	model  string
}

// NewGenAICompleter creates a Gemini-backed completer.
func NewGenAICompleter(ctx context.Context, apiKey, model string) (*GenAICompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAICompleter{client: client, model: model}, nil
}

// Complete sends a single-content request. No retry is attempted.
func (g *GenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// Name identifies the backing model in logs.
func (g *GenAICompleter) Name() string {
	return "genai:" + g.model
}

// NotConfigured answers every prompt with NotConfiguredReply.
func NotConfigured() Completer {
	return CompleterFunc(func(context.Context, string) (string, error) {
		return NotConfiguredReply, nil
	})
}
