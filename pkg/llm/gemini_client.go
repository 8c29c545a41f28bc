package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"fridgify/domain"
	"fridgify/internal/utils"
)

// geminiClient calls the Gemini generateContent endpoint for text extraction
// and recipe suggestions. Any API or parse failure falls back to the stub so
// the request never fails on the model.
type geminiClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	fallback   LLMClient
}

func NewGeminiClient(apiKey, model string) LLMClient {
	return &geminiClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		fallback:   NewStubClient(),
	}
}

// NewLLMClient picks the configured implementation. Gemini requires
// LLM_MODE=gemini plus an API key; everything else gets the stub.
func NewLLMClient() LLMClient {
	mode := utils.GetConfig("LLM_MODE")
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	model := utils.GetConfig("GEMINI_MODEL")
	if mode == "gemini" && apiKey != "" && model != "" {
		return NewGeminiClient(apiKey, model)
	}
	return NewStubClient()
}

var jsonPattern = regexp.MustCompile(`(?s)[\[{].*[\]}]`)

func (c *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	geminiURL := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	responseText := geminiResp.Candidates[0].Content.Parts[0].Text
	if matches := jsonPattern.FindString(responseText); matches != "" {
		responseText = matches
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
	}
	return strings.TrimSpace(responseText), nil
}

func (c *geminiClient) ExtractCandidatesFromText(ctx context.Context, text string) []domain.ItemCandidate {
	prompt := "Extract grocery items from the following shopping note. Respond ONLY with a valid JSON array " +
		"of objects with exactly these fields: 'name' (string), 'quantity' (number or null), 'unit' (string or null), " +
		"'expiry_date' (string YYYY-MM-DD or null). No explanations or markdown.\n\nNote: " + text

	responseText, err := c.generate(ctx, prompt)
	if err != nil {
		log.Printf("gemini text extraction failed, using stub: %v", err)
		return c.fallback.ExtractCandidatesFromText(ctx, text)
	}

	var parsed []struct {
		Name       string   `json:"name"`
		Quantity   *float64 `json:"quantity"`
		Unit       *string  `json:"unit"`
		ExpiryDate *string  `json:"expiry_date"`
	}
	if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
		log.Printf("failed to parse gemini extraction response, using stub: %v", err)
		return c.fallback.ExtractCandidatesFromText(ctx, text)
	}

	var candidates []domain.ItemCandidate
	for _, item := range parsed {
		if item.Name == "" {
			continue
		}
		unit := ""
		if item.Unit != nil {
			unit = *item.Unit
		}
		candidates = append(candidates, domain.ItemCandidate{
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       unit,
			ExpiryDate: item.ExpiryDate,
			Confidence: 0.9,
			Source:     domain.CandidateSourceText,
		})
	}
	if len(candidates) == 0 {
		return c.fallback.ExtractCandidatesFromText(ctx, text)
	}
	return candidates
}

func (c *geminiClient) ExtractCandidatesFromImages(ctx context.Context, imageNames []string) []domain.ItemCandidate {
	// Image payloads never leave storage; only filenames are available here, so
	// the filename parser handles this path in every mode.
	return c.fallback.ExtractCandidatesFromImages(ctx, imageNames)
}

func (c *geminiClient) SuggestRecipes(ctx context.Context, items []string, preferExpiringFirst bool) []domain.RecipeSuggestion {
	order := ""
	if preferExpiringFirst {
		order = " The items are ordered soonest-expiring first; prefer using the first ones."
	}
	prompt := "Suggest up to 3 recipes using these ingredients: " + strings.Join(items, ", ") + "." + order +
		" Respond ONLY with a valid JSON array of objects with exactly these fields: 'title' (string), " +
		"'steps' (array of strings), 'use_items' (array of strings), 'missing_items' (array of strings). " +
		"No explanations or markdown."

	responseText, err := c.generate(ctx, prompt)
	if err != nil {
		log.Printf("gemini recipe suggestion failed, using stub: %v", err)
		return c.fallback.SuggestRecipes(ctx, items, preferExpiringFirst)
	}

	var suggestions []domain.RecipeSuggestion
	if err := json.Unmarshal([]byte(responseText), &suggestions); err != nil {
		log.Printf("failed to parse gemini recipe response, using stub: %v", err)
		return c.fallback.SuggestRecipes(ctx, items, preferExpiringFirst)
	}
	if len(suggestions) == 0 {
		return c.fallback.SuggestRecipes(ctx, items, preferExpiringFirst)
	}
	return suggestions
}
