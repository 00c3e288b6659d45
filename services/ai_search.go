package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pharmacy-server/models"

	openai "github.com/sashabaranov/go-openai"
)

const aiSearchResultCount = 4

const imagePromptEndpoint = "https://image.pollinations.ai/prompt/"

// AISearcher asks the hosted model for brand-name medicine suggestions when
// the local catalog has no match.
type AISearcher struct {
	llm   ChatCompleter
	model string
	now   func() time.Time
}

func NewAISearcher(llm ChatCompleter, model string) *AISearcher {
	return &AISearcher{llm: llm, model: model, now: time.Now}
}

type aiSearchPayload struct {
	Products []struct {
		Name                   string   `json:"name"`
		Description            string   `json:"description"`
		Category               string   `json:"category"`
		Composition            string   `json:"composition"`
		Usage                  string   `json:"usage"`
		SideEffects            string   `json:"sideEffects"`
		Precautions            []string `json:"precautions"`
		IsPrescriptionRequired bool     `json:"isPrescriptionRequired"`
	} `json:"products"`
}

// Suggest returns AI-synthesized products for a query. Every returned id is
// in the reserved synthetic range. Errors are returned to the caller; the
// hybrid search engine decides how to degrade.
func (a *AISearcher) Suggest(ctx context.Context, query string) ([]models.Product, error) {
	if a == nil || a.llm == nil {
		return nil, ErrAIOffline
	}

	prompt := fmt.Sprintf(
		`Suggest exactly %d distinct real-world brand-name medicine products matching "%s". `+
			`Use actual commercial brand names, never generic or chemical names alone. `+
			`Respond with a JSON object of the form `+
			`{"products":[{"name":string,"description":string,"category":string,"composition":string,`+
			`"usage":string,"sideEffects":string,"precautions":[string],"isPrescriptionRequired":boolean}]}`,
		aiSearchResultCount, query)

	resp, err := a.llm.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a pharmacy product database. You answer only with valid JSON matching the requested schema.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai search request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ai search returned no choices")
	}

	var payload aiSearchPayload
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("ai search returned malformed JSON: %w", err)
	}

	// Wall-clock base instead of a counter: results are transient, so id
	// collisions across near-simultaneous calls are a cosmetic risk only.
	base := a.now().Unix()
	products := make([]models.Product, 0, len(payload.Products))
	for i, p := range payload.Products {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		products = append(products, models.Product{
			ID:                     base + int64(i) + models.SyntheticIDThreshold,
			Name:                   p.Name,
			Description:            p.Description,
			Image:                  imagePromptEndpoint + url.QueryEscape(p.Name+" medicine product photo"),
			Category:               p.Category,
			Composition:            p.Composition,
			Usage:                  p.Usage,
			SideEffects:            p.SideEffects,
			Precautions:            p.Precautions,
			IsPrescriptionRequired: p.IsPrescriptionRequired,
			Source:                 models.ProductSourceAI,
		})
	}
	return products, nil
}
