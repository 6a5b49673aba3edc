package chat

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// DefaultModel is used when AssistantConfig.Model is empty.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You are OceanAI, an assistant for exploring ARGO float and satellite ocean data.
Answer in two or three friendly sentences. You cannot fetch live data in this demo,
so describe what you would show rather than inventing measurements.`

// AssistantConfig configures the OpenAI-backed answerer.
type AssistantConfig struct {
	APIKey  string
	BaseURL string // optional, for compatible endpoints
	Model   string
	Timeout time.Duration
}

// Assistant answers with a chat completion and falls back to the canned
// replies whenever the API cannot be reached.
type Assistant struct {
	client   *openai.Client
	model    string
	timeout  time.Duration
	fallback *Responder
	log      *logrus.Entry
}

// NewAssistant creates an Assistant. fallback must not be nil.
func NewAssistant(cfg AssistantConfig, fallback *Responder) *Assistant {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Assistant{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		timeout:  cfg.Timeout,
		fallback: fallback,
		log:      logrus.WithField("component", "assistant"),
	}
}

// Answer asks the model about question.
func (a *Assistant) Answer(ctx context.Context, question string) string {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
		MaxTokens:   256,
		Temperature: 0.7,
	})
	if err != nil {
		a.log.WithError(err).Warn("chat completion failed, using canned reply")
		return a.fallback.Reply()
	}
	if len(resp.Choices) == 0 {
		return a.fallback.Reply()
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return a.fallback.Reply()
	}
	return content
}
