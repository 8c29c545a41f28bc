package recipe

import (
	"context"
	"testing"
	"time"

	"fridgify/domain"
	"fridgify/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemRepository struct {
	items []*entities.FridgeItem
}

func (r *fakeItemRepository) CreateItems(_ context.Context, items []*entities.FridgeItem) error {
	r.items = append(r.items, items...)
	return nil
}

func (r *fakeItemRepository) GetItemByID(_ context.Context, _ string) (*entities.FridgeItem, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeItemRepository) UpdateItem(_ context.Context, _ *entities.FridgeItem) error {
	return nil
}

func (r *fakeItemRepository) DeleteItem(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (r *fakeItemRepository) GetItems(_ context.Context, fridgeID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	for _, item := range r.items {
		if item.FridgeID.String() == fridgeID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) GetExpiringItems(_ context.Context, _ string, _ time.Time) ([]*entities.FridgeItem, error) {
	return nil, nil
}

func (r *fakeItemRepository) GetExpiringItemsAll(_ context.Context, _ time.Time) ([]*entities.FridgeItem, error) {
	return nil, nil
}

type fakeFridgeRepository struct {
	memberships map[string]bool
}

func (r *fakeFridgeRepository) CreateFridgeWithOwner(_ context.Context, _ *entities.Fridge) error {
	return nil
}

func (r *fakeFridgeRepository) GetFridgeByID(_ context.Context, _ string) (*entities.Fridge, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFridgeRepository) ListMembers(_ context.Context, _ string) ([]*entities.FridgeMember, error) {
	return nil, nil
}

func (r *fakeFridgeRepository) AddMember(_ context.Context, _ *entities.FridgeMember) error {
	return nil
}

func (r *fakeFridgeRepository) IsMember(_ context.Context, fridgeID string, userID string) (bool, error) {
	return r.memberships[fridgeID+"/"+userID], nil
}

func (r *fakeFridgeRepository) CreateInvite(_ context.Context, _ *entities.InviteCode) error {
	return nil
}

func (r *fakeFridgeRepository) GetInviteByCode(_ context.Context, _ string) (*entities.InviteCode, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFridgeRepository) IncrementInviteUsed(_ context.Context, _ string) error {
	return nil
}

type capturingLLMClient struct {
	receivedItems []string
}

func (c *capturingLLMClient) ExtractCandidatesFromText(_ context.Context, _ string) []domain.ItemCandidate {
	return nil
}

func (c *capturingLLMClient) ExtractCandidatesFromImages(_ context.Context, _ []string) []domain.ItemCandidate {
	return nil
}

func (c *capturingLLMClient) SuggestRecipes(_ context.Context, items []string, _ bool) []domain.RecipeSuggestion {
	c.receivedItems = items
	return []domain.RecipeSuggestion{{Title: "test recipe", UseItems: items}}
}

func seedItem(repo *fakeItemRepository, fridgeID uuid.UUID, name string, expiresIn *int) {
	var expiry *time.Time
	if expiresIn != nil {
		d := time.Now().UTC().AddDate(0, 0, *expiresIn)
		expiry = &d
	}
	repo.items = append(repo.items, &entities.FridgeItem{
		ID:         uuid.New(),
		FridgeID:   fridgeID,
		Name:       name,
		ExpiryDate: expiry,
		Status:     domain.StatusFresh,
	})
}

func TestSuggestRecipesRejectsNonMember(t *testing.T) {
	fridgeRepo := &fakeFridgeRepository{memberships: map[string]bool{}}
	service := NewRecipeService(&fakeItemRepository{}, fridgeRepo, &capturingLLMClient{})

	req := domain.RecipeSuggestRequest{FridgeID: uuid.New().String()}
	_, err := service.SuggestRecipes(context.Background(), req, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFridgeMember)
}

func TestSuggestRecipesPrefersExpiringFirst(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New().String()

	itemRepo := &fakeItemRepository{}
	days := func(n int) *int { return &n }
	seedItem(itemRepo, fridgeID, "pasta", nil)
	seedItem(itemRepo, fridgeID, "milk", days(1))
	seedItem(itemRepo, fridgeID, "cheese", days(5))

	fridgeRepo := &fakeFridgeRepository{memberships: map[string]bool{fridgeID.String() + "/" + userID: true}}
	llmClient := &capturingLLMClient{}
	service := NewRecipeService(itemRepo, fridgeRepo, llmClient)

	req := domain.RecipeSuggestRequest{FridgeID: fridgeID.String(), PreferExpiringFirst: true}
	res, err := service.SuggestRecipes(context.Background(), req, userID)

	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)
	// soonest expiry first, no expiry date last
	assert.Equal(t, []string{"milk", "cheese", "pasta"}, llmClient.receivedItems)
}

func TestSuggestRecipesKeepsInsertionOrderByDefault(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New().String()

	itemRepo := &fakeItemRepository{}
	days := func(n int) *int { return &n }
	seedItem(itemRepo, fridgeID, "pasta", nil)
	seedItem(itemRepo, fridgeID, "milk", days(1))

	fridgeRepo := &fakeFridgeRepository{memberships: map[string]bool{fridgeID.String() + "/" + userID: true}}
	llmClient := &capturingLLMClient{}
	service := NewRecipeService(itemRepo, fridgeRepo, llmClient)

	req := domain.RecipeSuggestRequest{FridgeID: fridgeID.String()}
	_, err := service.SuggestRecipes(context.Background(), req, userID)

	require.NoError(t, err)
	assert.Equal(t, []string{"pasta", "milk"}, llmClient.receivedItems)
}
