package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fridgify/domain"
)

type LLMClient interface {
	ExtractCandidatesFromText(ctx context.Context, text string) []domain.ItemCandidate
	ExtractCandidatesFromImages(ctx context.Context, imageNames []string) []domain.ItemCandidate
	SuggestRecipes(ctx context.Context, items []string, preferExpiringFirst bool) []domain.RecipeSuggestion
}

type stubClient struct{}

func NewStubClient() LLMClient {
	return &stubClient{}
}

func guessName(token string) string {
	return strings.SplitN(strings.TrimSpace(token), " ", 2)[0]
}

func parseQuantity(token string) (*float64, string) {
	parts := strings.Fields(strings.TrimSpace(token))
	if len(parts) == 0 {
		return nil, ""
	}

	raw := parts[0]
	if len(parts) > 1 {
		raw = parts[1]
	}
	qty, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, ""
	}

	unit := ""
	if len(parts) > 2 {
		unit = parts[2]
	}
	return &qty, unit
}

func (c *stubClient) ExtractCandidatesFromText(_ context.Context, text string) []domain.ItemCandidate {
	var candidates []domain.ItemCandidate
	for _, chunk := range strings.Split(text, ",") {
		raw := strings.TrimSpace(chunk)
		if raw == "" {
			continue
		}
		qty, unit := parseQuantity(raw)
		candidates = append(candidates, domain.ItemCandidate{
			Name:       guessName(raw),
			Quantity:   qty,
			Unit:       unit,
			Confidence: 0.5,
			Source:     domain.CandidateSourceText,
		})
	}
	return candidates
}

func (c *stubClient) ExtractCandidatesFromImages(_ context.Context, imageNames []string) []domain.ItemCandidate {
	var candidates []domain.ItemCandidate
	for _, name := range imageNames {
		stem := name
		if idx := strings.LastIndex(stem, "."); idx >= 0 {
			stem = stem[:idx]
		}
		itemName := strings.TrimSpace(strings.ReplaceAll(stem, "_", " "))
		if itemName == "" {
			itemName = "unknown"
		}
		candidates = append(candidates, domain.ItemCandidate{
			Name:       itemName,
			Confidence: 0.4,
			Source:     domain.CandidateSourceImage,
		})
	}
	return candidates
}

func (c *stubClient) SuggestRecipes(_ context.Context, items []string, _ bool) []domain.RecipeSuggestion {
	if len(items) == 0 {
		return []domain.RecipeSuggestion{
			{
				Title:        "Simple pantry salad",
				Steps:        []string{"Combine whatever you have.", "Season and serve."},
				UseItems:     []string{},
				MissingItems: []string{"olive oil", "salt"},
			},
		}
	}

	selected := items
	if len(selected) > 3 {
		selected = selected[:3]
	}
	joined := strings.Join(selected, ", ")

	return []domain.RecipeSuggestion{
		{
			Title: "Quick mix with " + joined,
			Steps: []string{
				fmt.Sprintf("Prepare %s.", joined),
				"Cook or mix as needed.",
				"Season and serve.",
			},
			UseItems:     selected,
			MissingItems: []string{"salt", "oil"},
		},
	}
}
