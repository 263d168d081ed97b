package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"codecraft/internal/config"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/pkg/logger"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel   = "llama-3.3-70b-versatile"

	temperature = 0.7
	maxTokens   = 1024
)

var (
	ErrNotConfigured = errors.New("groq api key is not configured")
	ErrUpstream      = errors.New("groq request failed")
	ErrEmptyReply    = errors.New("groq returned no choices")
)

const mentorSystemPrompt = `You are CodeCraft, an expert AI coding mentor and technical educator. You are professional, knowledgeable, and supportive.

**Your Core Qualities:**
- Deep expertise in software development, data structures, algorithms, system design, and career guidance
- Clear communicator who breaks complex topics into understandable concepts
- Professional and encouraging tone, never condescending
- Practical advisor who provides actionable guidance with real examples

**Response Format Guidelines:**
1. Start with a clear heading (use ## for the main topic)
2. Use ### subheadings for sections, bullet points for lists and numbered lists for steps
3. Use inline code and fenced code blocks with syntax highlighting for examples
4. Bold key terms, keep it concise but thorough

Always format your responses to be visually scannable and easy to understand.`

type GroqClient struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

func NewGroqClient(cfg config.GroqConfig, log logger.Logger) *GroqClient {
	if log == nil {
		log = logger.NewNop()
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Warn("[LLM] GROQ_API_KEY not set, mentor chat disabled")
		return &GroqClient{log: log}
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL
	if oc.BaseURL == "" {
		oc.BaseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	log.Info("[LLM] Groq chat client initialized", zap.String("model", model))
	return &GroqClient{client: openai.NewClientWithConfig(oc), model: model, log: log}
}

func (g *GroqClient) Configured() bool {
	return g != nil && g.client != nil
}

// Chat sends the conversation with the mentor system prompt prepended and
// returns the assistant's reply.
func (g *GroqClient) Chat(ctx context.Context, messages []mentor.ChatMessage) (string, error) {
	if !g.Configured() {
		return "", ErrNotConfigured
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: mentorSystemPrompt})
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			g.log.Warn("[LLM] Groq API error", zap.Int("status", apiErr.HTTPStatusCode), zap.String("message", apiErr.Message))
			return "", fmt.Errorf("%w: %s", ErrUpstream, apiErr.Message)
		}
		g.log.Error("[LLM] Groq request failed", err)
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Message.Content, nil
}
