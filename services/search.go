package services

import (
	"context"
	"fmt"
	"strings"

	"pharmacy-server/catalog"
	"pharmacy-server/models"
)

// ChatSearchLimit caps results on the conversational path. The catalog
// browse path passes 0 (no cap).
const ChatSearchLimit = 4

// Suggester is the AI fallback behind the hybrid search.
type Suggester interface {
	Suggest(ctx context.Context, query string) ([]models.Product, error)
}

// SearchEngine filters the static catalog first and falls back to the AI
// delegate only when the local filter comes up empty.
type SearchEngine struct {
	suggester Suggester
}

func NewSearchEngine(suggester Suggester) *SearchEngine {
	return &SearchEngine{suggester: suggester}
}

// Search never fails: delegate errors are logged and collapse to an empty
// result, so callers see "zero results" and "search failed" identically.
func (e *SearchEngine) Search(ctx context.Context, query string, limit int) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	var local []models.Product
	for _, p := range catalog.All() {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			local = append(local, p)
		}
	}

	if len(local) > 0 {
		if limit > 0 && len(local) > limit {
			local = local[:limit]
		}
		return local
	}

	if e.suggester == nil {
		return []models.Product{}
	}
	suggested, err := e.suggester.Suggest(ctx, query)
	if err != nil {
		fmt.Printf("AI search fallback failed for %q: %v\n", query, err)
		return []models.Product{}
	}
	if suggested == nil {
		suggested = []models.Product{}
	}
	return suggested
}
