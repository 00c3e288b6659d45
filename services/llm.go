package services

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrAIOffline is returned when no provider credential is configured. Call
// sites short-circuit on it without attempting the network.
var ErrAIOffline = errors.New("ai provider is not configured")

// ChatCompleter is the slice of the provider client the chat-based services
// depend on. *openai.Client satisfies it; tests supply fakes.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type LLMService struct {
	Client    *openai.Client
	ChatModel string
	TTSModel  string
}

var LLM *LLMService

// InitializeLLM sets up the shared provider client. An empty API key leaves
// the service in offline mode rather than failing startup.
func InitializeLLM(apiKey, baseURL, chatModel, ttsModel string) error {
	LLM = &LLMService{ChatModel: chatModel, TTSModel: ttsModel}

	if apiKey == "" {
		fmt.Printf("WARNING: OPENAI_API_KEY not set, AI features disabled\n")
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	LLM.Client = openai.NewClientWithConfig(cfg)
	return nil
}

// Configured reports whether AI calls can be attempted at all.
func (s *LLMService) Configured() bool {
	return s != nil && s.Client != nil
}
