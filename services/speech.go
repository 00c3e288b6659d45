package services

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// SpeechService turns assistant replies into audio via the provider's speech
// endpoint.
type SpeechService struct {
	client *openai.Client
	model  string
}

func NewSpeechService(client *openai.Client, model string) *SpeechService {
	return &SpeechService{client: client, model: model}
}

func (s *SpeechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s == nil || s.client == nil {
		return nil, ErrAIOffline
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.model),
		Input: text,
		Voice: openai.VoiceNova,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read speech audio: %w", err)
	}
	return audio, nil
}
