package domain

var (
	MessageSuccessSuggestRecipes = "recipe suggestions generated successfully"
	MessageFailedSuggestRecipes  = "failed to generate recipe suggestions"
)

type (
	RecipeSuggestRequest struct {
		FridgeID            string `json:"fridge_id" validate:"required,uuid"`
		PreferExpiringFirst bool   `json:"prefer_expiring_first"`
	}

	RecipeSuggestion struct {
		Title        string   `json:"title"`
		Steps        []string `json:"steps"`
		UseItems     []string `json:"use_items"`
		MissingItems []string `json:"missing_items"`
	}

	RecipeSuggestResponse struct {
		Recipes []RecipeSuggestion `json:"recipes"`
	}
)
