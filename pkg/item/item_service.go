package item

import (
	"context"
	"errors"
	"time"

	"fridgify/domain"
	"fridgify/entities"
	"fridgify/pkg/fridge"
	"fridgify/pkg/llm"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ItemService interface {
		IngestCandidates(ctx context.Context, text string, imageNames []string) []domain.ItemCandidate
		ConfirmItems(ctx context.Context, req domain.ConfirmItemsRequest, userID string, expiringDays int) ([]domain.ItemResponse, error)
		GetItems(ctx context.Context, fridgeID string, userID string) ([]domain.ItemResponse, error)
		GetExpiringItems(ctx context.Context, fridgeID string, userID string, days int) ([]domain.ItemResponse, error)
		UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest, userID string, expiringDays int) (domain.ItemResponse, error)
		DeleteItem(ctx context.Context, itemID string, userID string) error
	}

	itemService struct {
		itemRepository   ItemRepository
		fridgeRepository fridge.FridgeRepository
		llmClient        llm.LLMClient
	}
)

func NewItemService(itemRepository ItemRepository, fridgeRepository fridge.FridgeRepository, llmClient llm.LLMClient) ItemService {
	return &itemService{
		itemRepository:   itemRepository,
		fridgeRepository: fridgeRepository,
		llmClient:        llmClient,
	}
}

// IngestCandidates is a pure transformation: nothing is persisted. Text
// candidates come first, then image candidates.
func (s *itemService) IngestCandidates(ctx context.Context, text string, imageNames []string) []domain.ItemCandidate {
	candidates := make([]domain.ItemCandidate, 0)
	if text != "" {
		candidates = append(candidates, s.llmClient.ExtractCandidatesFromText(ctx, text)...)
	}
	if len(imageNames) > 0 {
		candidates = append(candidates, s.llmClient.ExtractCandidatesFromImages(ctx, imageNames)...)
	}
	return candidates
}

func (s *itemService) ConfirmItems(ctx context.Context, req domain.ConfirmItemsRequest, userID string, expiringDays int) ([]domain.ItemResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, req.FridgeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, domain.ErrNotFridgeMember
	}

	fridgeUUID, err := uuid.Parse(req.FridgeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	// All items in one call share the same reference point.
	today := time.Now().UTC()

	items := make([]*entities.FridgeItem, 0, len(req.Items))
	for _, submitted := range req.Items {
		expiryDate, err := parseDate(submitted.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiryDate
		}
		purchaseDate, err := parseDate(submitted.PurchaseDate)
		if err != nil {
			return nil, domain.ErrInvalidDate
		}

		items = append(items, &entities.FridgeItem{
			ID:              uuid.New(),
			FridgeID:        fridgeUUID,
			Name:            submitted.Name,
			Category:        submitted.Category,
			Quantity:        submitted.Quantity,
			Unit:            submitted.Unit,
			PurchaseDate:    purchaseDate,
			ExpiryDate:      expiryDate,
			StorageLocation: submitted.StorageLocation,
			Status:          DetermineStatus(expiryDate, today, expiringDays),
			Notes:           submitted.Notes,
		})
	}

	if err := s.itemRepository.CreateItems(ctx, items); err != nil {
		return nil, err
	}

	response := make([]domain.ItemResponse, 0, len(items))
	for _, created := range items {
		response = append(response, toItemResponse(created))
	}
	return response, nil
}

func (s *itemService) GetItems(ctx context.Context, fridgeID string, userID string) ([]domain.ItemResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, fridgeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, domain.ErrNotFridgeMember
	}

	items, err := s.itemRepository.GetItems(ctx, fridgeID)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) GetExpiringItems(ctx context.Context, fridgeID string, userID string, days int) ([]domain.ItemResponse, error) {
	isMember, err := s.fridgeRepository.IsMember(ctx, fridgeID, userID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, domain.ErrNotFridgeMember
	}

	cutoff := truncateToDay(time.Now().UTC()).AddDate(0, 0, days)
	items, err := s.itemRepository.GetExpiringItems(ctx, fridgeID, cutoff)
	if err != nil {
		return nil, err
	}
	return toItemResponses(items), nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, req domain.UpdateItemRequest, userID string, expiringDays int) (domain.ItemResponse, error) {
	item, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ItemResponse{}, domain.ErrItemNotFound
		}
		return domain.ItemResponse{}, err
	}

	// Membership is checked against the item's owning fridge, which is only
	// known after the lookup succeeds.
	isMember, err := s.fridgeRepository.IsMember(ctx, item.FridgeID.String(), userID)
	if err != nil {
		return domain.ItemResponse{}, err
	}
	if !isMember {
		return domain.ItemResponse{}, domain.ErrNotFridgeMember
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		item.Quantity = req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.StorageLocation != nil {
		item.StorageLocation = *req.StorageLocation
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := parseDate(*req.PurchaseDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidDate
		}
		item.PurchaseDate = purchaseDate
	}

	expiryChanged := false
	if req.ExpiryDate != nil {
		expiryDate, err := parseDate(*req.ExpiryDate)
		if err != nil {
			return domain.ItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
		expiryChanged = true
	}

	// An explicit status always wins; otherwise an expiry change recomputes it.
	if req.Status != nil {
		item.Status = *req.Status
	} else if expiryChanged {
		item.Status = DetermineStatus(item.ExpiryDate, time.Now().UTC(), expiringDays)
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return domain.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID string, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	isMember, err := s.fridgeRepository.IsMember(ctx, item.FridgeID.String(), userID)
	if err != nil {
		return err
	}
	if !isMember {
		return domain.ErrNotFridgeMember
	}

	rows, err := s.itemRepository.DeleteItem(ctx, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Deleted between lookup and delete; still not-found, never silent.
		return domain.ErrItemNotFound
	}
	return nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func toItemResponse(item *entities.FridgeItem) domain.ItemResponse {
	return domain.ItemResponse{
		ID:              item.ID.String(),
		FridgeID:        item.FridgeID.String(),
		Name:            item.Name,
		Category:        item.Category,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		PurchaseDate:    item.PurchaseDate,
		ExpiryDate:      item.ExpiryDate,
		StorageLocation: item.StorageLocation,
		Status:          item.Status,
		Notes:           item.Notes,
		ImageURL:        item.ImageURL,
		CreatedAt:       item.CreatedAt,
	}
}

func toItemResponses(items []*entities.FridgeItem) []domain.ItemResponse {
	response := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response
}
