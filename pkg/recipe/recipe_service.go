package recipe

import (
	"context"
	"sort"

	"fridgify/domain"
	"fridgify/entities"
	"fridgify/pkg/fridge"
	"fridgify/pkg/item"
	"fridgify/pkg/llm"
)

type (
	RecipeService interface {
		SuggestRecipes(ctx context.Context, req domain.RecipeSuggestRequest, userID string) (domain.RecipeSuggestResponse, error)
	}

	recipeService struct {
		itemRepository   item.ItemRepository
		fridgeRepository fridge.FridgeRepository
		llmClient        llm.LLMClient
	}
)

func NewRecipeService(itemRepository item.ItemRepository, fridgeRepository fridge.FridgeRepository, llmClient llm.LLMClient) RecipeService {
	return &recipeService{
		itemRepository:   itemRepository,
		fridgeRepository: fridgeRepository,
		llmClient:        llmClient,
	}
}

func (s *recipeService) SuggestRecipes(ctx context.Context, req domain.RecipeSuggestRequest, userID string) (domain.RecipeSuggestResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, req.FridgeID, userID)
	if err != nil {
		return domain.RecipeSuggestResponse{}, err
	}
	if !isMember {
		return domain.RecipeSuggestResponse{}, domain.ErrNotFridgeMember
	}

	items, err := s.itemRepository.GetItems(ctx, req.FridgeID)
	if err != nil {
		return domain.RecipeSuggestResponse{}, err
	}

	if req.PreferExpiringFirst {
		sortByExpiry(items)
	}

	names := make([]string, 0, len(items))
	for _, fridgeItem := range items {
		if fridgeItem.Name != "" {
			names = append(names, fridgeItem.Name)
		}
	}

	recipes := s.llmClient.SuggestRecipes(ctx, names, req.PreferExpiringFirst)
	return domain.RecipeSuggestResponse{Recipes: recipes}, nil
}

// sortByExpiry orders soonest-expiring first; items without an expiry date
// sort last.
func sortByExpiry(items []*entities.FridgeItem) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].ExpiryDate, items[j].ExpiryDate
		if left == nil {
			return false
		}
		if right == nil {
			return true
		}
		return left.Before(*right)
	})
}
