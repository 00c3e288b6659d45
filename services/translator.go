package services

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Translator re-renders text in a target language via a one-shot provider
// call, preserving markdown emphasis.
type Translator struct {
	llm   ChatCompleter
	model string
}

func NewTranslator(llm ChatCompleter, model string) *Translator {
	return &Translator{llm: llm, model: model}
}

func (t *Translator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if t == nil || t.llm == nil {
		return text, ErrAIOffline
	}

	resp, err := t.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You translate text for a pharmacy website. Preserve markdown emphasis such as **bold** and *italics* exactly. Reply with only the translated text, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate the following into %s:\n\n%s", targetLanguage, text),
			},
		},
	})
	if err != nil {
		return text, fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return text, fmt.Errorf("translation returned no choices")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return text, fmt.Errorf("translation returned empty text")
	}
	return translated, nil
}
