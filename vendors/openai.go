package vendors

import (
	"context"
	"sync"

	"github.com/aguichard/persosite/config"
	"github.com/aguichard/persosite/log"
	"github.com/sashabaranov/go-openai"
)

var (
	openaiClient     *OpenAIClient
	openaiClientOnce sync.Once
)

// OpenAIClient wraps the OpenAI client
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// CompletionOptions holds options for completions
type CompletionOptions struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float32
}

// GetOpenAIClient returns the singleton OpenAI client, nil when not configured
func GetOpenAIClient() *OpenAIClient {
	openaiClientOnce.Do(func() {
		cfg := config.Get()

		if cfg.OpenAIAPIKey == "" {
			log.Warn().Msg("OPENAI_API_KEY not configured, OpenAI disabled")
			return
		}

		clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
		if cfg.OpenAIBaseURL != "" && cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
			clientConfig.BaseURL = cfg.OpenAIBaseURL
		}

		openaiClient = &OpenAIClient{
			client: openai.NewClientWithConfig(clientConfig),
			model:  cfg.OpenAIModel,
		}

		log.Info().Str("model", cfg.OpenAIModel).Msg("OpenAI initialized")
	})

	return openaiClient
}

// NewOpenAIClient creates a client directly, used by tests and tools
func NewOpenAIClient(client *openai.Client, model string) *OpenAIClient {
	return &OpenAIClient{client: client, model: model}
}

// Complete performs a chat completion and returns the first choice's text
func (o *OpenAIClient) Complete(ctx context.Context, opts CompletionOptions) (string, error) {
	var messages []openai.ChatCompletionMessage

	if opts.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.SystemPrompt,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: opts.Prompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("completion failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		log.Error().Msg("openai response has no choices")
		return "", nil
	}

	log.Debug().
		Str("finishReason", string(resp.Choices[0].FinishReason)).
		Int("promptTokens", resp.Usage.PromptTokens).
		Int("completionTokens", resp.Usage.CompletionTokens).
		Msg("openai response")

	return resp.Choices[0].Message.Content, nil
}
