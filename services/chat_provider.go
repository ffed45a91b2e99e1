package services

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/korbahq/korba-app/config"
)

// Message is one entry of a generation request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const roleSystem = "system"

// ChatProvider abstracts the external text-generation endpoint so tests can
// swap in a scripted implementation.
type ChatProvider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// UnavailableProvider always fails, which the chat service converts into its
// fixed fallback reply. Used when no API key is configured.
type UnavailableProvider struct{}

func (UnavailableProvider) Generate(ctx context.Context, _ []Message) (string, error) {
	return "", fmt.Errorf("chat provider is not configured")
}

// OpenAICompatProvider talks to any OpenAI-compatible completion endpoint.
// The default configuration points at Gemini's compatibility layer.
type OpenAICompatProvider struct {
	llm   *openai.LLM
	model string
}

func NewOpenAICompatProvider(cfg config.ChatConfig) (*OpenAICompatProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("chat provider requires an API key (set GEMINI_API_KEY)")
	}

	client, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}

	return &OpenAICompatProvider{llm: client, model: cfg.Model}, nil
}

// Generate sends the transcript and returns the completion text. An empty
// string with a nil error means the endpoint answered without usable text.
func (p *OpenAICompatProvider) Generate(ctx context.Context, messages []Message) (string, error) {
	content := make([]llms.MessageContent, len(messages))
	for i, msg := range messages {
		var msgType schema.ChatMessageType
		switch msg.Role {
		case roleSystem:
			msgType = schema.ChatMessageTypeSystem
		case "assistant":
			msgType = schema.ChatMessageTypeAI
		default:
			msgType = schema.ChatMessageTypeHuman
		}
		content[i] = llms.TextParts(msgType, msg.Content)
	}

	response, err := p.llm.GenerateContent(ctx, content, llms.WithModel(p.model))
	if err != nil {
		return "", err
	}
	if response == nil || len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Content, nil
}
