package item

import (
	"context"
	"testing"
	"time"

	"fridgify/domain"
	"fridgify/entities"
	"fridgify/pkg/llm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemRepository struct {
	items      map[string]*entities.FridgeItem
	createCnt  int
	deleteRows int64
}

func newFakeItemRepository() *fakeItemRepository {
	return &fakeItemRepository{items: make(map[string]*entities.FridgeItem), deleteRows: 1}
}

func (r *fakeItemRepository) CreateItems(_ context.Context, items []*entities.FridgeItem) error {
	for _, item := range items {
		r.items[item.ID.String()] = item
	}
	r.createCnt++
	return nil
}

func (r *fakeItemRepository) GetItemByID(_ context.Context, id string) (*entities.FridgeItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakeItemRepository) UpdateItem(_ context.Context, item *entities.FridgeItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeItemRepository) DeleteItem(_ context.Context, id string) (int64, error) {
	if r.deleteRows > 0 {
		delete(r.items, id)
	}
	return r.deleteRows, nil
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

func (r *fakeItemRepository) GetExpiringItems(_ context.Context, fridgeID string, cutoff time.Time) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	for _, item := range r.items {
		if item.FridgeID.String() == fridgeID && item.ExpiryDate != nil && !item.ExpiryDate.After(cutoff) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeItemRepository) GetExpiringItemsAll(_ context.Context, cutoff time.Time) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	for _, item := range r.items {
		if item.ExpiryDate != nil && !item.ExpiryDate.After(cutoff) {
			items = append(items, item)
		}
	}
	return items, nil
}

type fakeFridgeRepository struct {
	memberships map[string]bool
}

func newFakeFridgeRepository() *fakeFridgeRepository {
	return &fakeFridgeRepository{memberships: make(map[string]bool)}
}

func (r *fakeFridgeRepository) addMembership(fridgeID, userID string) {
	r.memberships[fridgeID+"/"+userID] = true
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

func TestConfirmItemsRejectsNonMember(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	req := domain.ConfirmItemsRequest{
		FridgeID: uuid.New().String(),
		Items:    []domain.ConfirmItemRequest{{Name: "milk"}},
	}

	_, err := service.ConfirmItems(context.Background(), req, uuid.New().String(), 3)

	assert.ErrorIs(t, err, domain.ErrNotFridgeMember)
	assert.Zero(t, itemRepo.createCnt, "nothing should be persisted for a non-member")
}

func TestConfirmItemsAssignsStatusPerItem(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	fridgeID := uuid.New().String()
	userID := uuid.New().String()
	fridgeRepo.addMembership(fridgeID, userID)

	today := time.Now().UTC()
	soon := today.AddDate(0, 0, 1).Format(dateLayout)
	far := today.AddDate(0, 0, 10).Format(dateLayout)

	req := domain.ConfirmItemsRequest{
		FridgeID: fridgeID,
		Items: []domain.ConfirmItemRequest{
			{Name: "yogurt", ExpiryDate: soon},
			{Name: "pasta", ExpiryDate: far},
			{Name: "salt"},
		},
	}

	res, err := service.ConfirmItems(context.Background(), req, userID, 3)

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, domain.StatusExpiring, res[0].Status)
	assert.Equal(t, domain.StatusFresh, res[1].Status)
	assert.Equal(t, domain.StatusFresh, res[2].Status)
	assert.Len(t, itemRepo.items, 3)
}

func TestConfirmItemsRejectsMalformedExpiry(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	fridgeID := uuid.New().String()
	userID := uuid.New().String()
	fridgeRepo.addMembership(fridgeID, userID)

	req := domain.ConfirmItemsRequest{
		FridgeID: fridgeID,
		Items:    []domain.ConfirmItemRequest{{Name: "milk", ExpiryDate: "03-10-2026"}},
	}

	_, err := service.ConfirmItems(context.Background(), req, userID, 3)

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
	assert.Zero(t, itemRepo.createCnt)
}

func TestUpdateItemRecomputesStatusOnExpiryChange(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	fridgeID := uuid.New()
	userID := uuid.New().String()
	fridgeRepo.addMembership(fridgeID.String(), userID)

	stored := &entities.FridgeItem{
		ID:       uuid.New(),
		FridgeID: fridgeID,
		Name:     "cheese",
		Status:   domain.StatusFresh,
	}
	itemRepo.items[stored.ID.String()] = stored

	newExpiry := time.Now().UTC().AddDate(0, 0, -2).Format(dateLayout)
	res, err := service.UpdateItem(context.Background(), stored.ID.String(), domain.UpdateItemRequest{
		ExpiryDate: &newExpiry,
	}, userID, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, res.Status)
}

func TestUpdateItemExplicitStatusWins(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	fridgeID := uuid.New()
	userID := uuid.New().String()
	fridgeRepo.addMembership(fridgeID.String(), userID)

	stored := &entities.FridgeItem{
		ID:       uuid.New(),
		FridgeID: fridgeID,
		Name:     "cheese",
		Status:   domain.StatusFresh,
	}
	itemRepo.items[stored.ID.String()] = stored

	newExpiry := time.Now().UTC().AddDate(0, 0, -2).Format(dateLayout)
	status := domain.StatusFresh
	res, err := service.UpdateItem(context.Background(), stored.ID.String(), domain.UpdateItemRequest{
		ExpiryDate: &newExpiry,
		Status:     &status,
	}, userID, 3)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusFresh, res.Status)
}

func TestUpdateItemNotFoundBeforeMembership(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	// The caller is not a member of anything, but a missing item must still
	// surface as not-found rather than forbidden.
	_, err := service.UpdateItem(context.Background(), uuid.New().String(), domain.UpdateItemRequest{}, uuid.New().String(), 3)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItemLostRaceIsNotFound(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	fridgeID := uuid.New()
	userID := uuid.New().String()
	fridgeRepo.addMembership(fridgeID.String(), userID)

	stored := &entities.FridgeItem{ID: uuid.New(), FridgeID: fridgeID, Name: "butter"}
	itemRepo.items[stored.ID.String()] = stored
	itemRepo.deleteRows = 0

	err := service.DeleteItem(context.Background(), stored.ID.String(), userID)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestDeleteItemRejectsNonMember(t *testing.T) {
	itemRepo := newFakeItemRepository()
	fridgeRepo := newFakeFridgeRepository()
	service := NewItemService(itemRepo, fridgeRepo, llm.NewStubClient())

	stored := &entities.FridgeItem{ID: uuid.New(), FridgeID: uuid.New(), Name: "butter"}
	itemRepo.items[stored.ID.String()] = stored

	err := service.DeleteItem(context.Background(), stored.ID.String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrNotFridgeMember)
	assert.Contains(t, itemRepo.items, stored.ID.String())
}

func TestIngestCandidatesOrdersTextBeforeImages(t *testing.T) {
	service := NewItemService(newFakeItemRepository(), newFakeFridgeRepository(), llm.NewStubClient())

	candidates := service.IngestCandidates(context.Background(), "milk 2 l", []string{"orange_juice.jpg"})

	require.Len(t, candidates, 2)
	assert.Equal(t, domain.CandidateSourceText, candidates[0].Source)
	assert.Equal(t, domain.CandidateSourceImage, candidates[1].Source)
}
