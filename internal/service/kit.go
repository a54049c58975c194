package service

import (
	"errors"
	"fmt"

	"field-ops-backend/internal/database/models"
	apperrors "field-ops-backend/internal/errors"
	"field-ops-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KitService manages the kit catalog: kits, their base item sets and their
// condition variants. A kit that any assignment references can only be
// deactivated; deactivation keeps past assignments resolvable.
type KitService struct {
	kitRepo   repository.KitRepositoryInterface
	validator *validator.Validate
}

// NewKitService creates a new kit service
func NewKitService(kitRepo repository.KitRepositoryInterface, validator *validator.Validate) *KitService {
	return &KitService{
		kitRepo:   kitRepo,
		validator: validator,
	}
}

// KitItemRequest represents one item line in a kit or variant
type KitItemRequest struct {
	ItemName string          `json:"item_name" validate:"required,min=1,max=100"`
	ItemType models.ItemType `json:"item_type" validate:"required"`
	Quantity float64         `json:"quantity" validate:"min=0"`
	Unit     string          `json:"unit" validate:"required,min=1,max=30"`
	Required *bool           `json:"required,omitempty"`
}

// CreateKitRequest represents the request to create a kit. A kit cannot be
// created empty: at least one base item is required.
type CreateKitRequest struct {
	Code  string           `json:"code" validate:"required,min=1,max=60"`
	Name  string           `json:"name" validate:"required,min=1,max=100"`
	Items []KitItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateVariantRequest represents the request to add a variant to a kit
type CreateVariantRequest struct {
	Name         string           `json:"name" validate:"required,min=1,max=100"`
	ConditionTag string           `json:"condition_tag,omitempty" validate:"max=60"`
	Items        []KitItemRequest `json:"items" validate:"required,min=1,dive"`
}

// KitItemResponse represents a kit item in responses
type KitItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	KitID     uuid.UUID       `json:"kit_id"`
	VariantID *uuid.UUID      `json:"variant_id,omitempty"`
	ItemName  string          `json:"item_name"`
	ItemType  models.ItemType `json:"item_type"`
	Quantity  float64         `json:"quantity"`
	Unit      string          `json:"unit"`
	Required  bool            `json:"required"`
}

// KitVariantResponse represents a kit variant in responses
type KitVariantResponse struct {
	ID           uuid.UUID         `json:"id"`
	KitID        uuid.UUID         `json:"kit_id"`
	Name         string            `json:"name"`
	ConditionTag string            `json:"condition_tag,omitempty"`
	Items        []KitItemResponse `json:"items,omitempty"`
}

// KitResponse represents a kit in responses
type KitResponse struct {
	ID       uuid.UUID            `json:"id"`
	Code     string               `json:"code"`
	Name     string               `json:"name"`
	IsActive bool                 `json:"is_active"`
	Items    []KitItemResponse    `json:"items,omitempty"`
	Variants []KitVariantResponse `json:"variants,omitempty"`
}

// KitListResponse represents a paginated list of kits
type KitListResponse struct {
	Kits   []KitResponse `json:"kits"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// CreateKit creates a kit with its base item set. Kit codes are unique per
// tenant.
func (s *KitService) CreateKit(tenantID uuid.UUID, req *CreateKitRequest) (*KitResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for i := range req.Items {
		if !req.Items[i].ItemType.IsValid() {
			return nil, apperrors.NewValidationError("item_type", "must be equipment, material or tool")
		}
	}

	if _, err := s.kitRepo.GetByCode(tenantID, req.Code); err == nil {
		return nil, apperrors.ErrKitCodeExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check kit code: %w", err)
	}

	// Items ride along on the single Create so the kit and its base set are
	// persisted atomically; a failed item insert must not leave an empty kit.
	kit := &models.Kit{
		TenantID: tenantID,
		Code:     req.Code,
		Name:     req.Name,
		IsActive: true,
	}
	for i := range req.Items {
		kit.Items = append(kit.Items, *s.toItemModel(tenantID, uuid.Nil, nil, &req.Items[i]))
	}
	if err := s.kitRepo.Create(kit); err != nil {
		return nil, fmt.Errorf("failed to create kit: %w", err)
	}

	return s.toResponse(kit), nil
}

// GetByID retrieves a kit with its items and variants
func (s *KitService) GetByID(tenantID, kitID uuid.UUID) (*KitResponse, error) {
	kit, err := s.kitRepo.GetByID(tenantID, kitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}
	return s.toResponse(kit), nil
}

// GetByCode retrieves a kit by its tenant-unique code
func (s *KitService) GetByCode(tenantID uuid.UUID, code string) (*KitResponse, error) {
	kit, err := s.kitRepo.GetByCode(tenantID, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}
	return s.toResponse(kit), nil
}

// List retrieves kits with pagination
func (s *KitService) List(tenantID uuid.UUID, activeOnly bool, limit, offset int) (*KitListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	kits, total, err := s.kitRepo.GetAll(tenantID, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list kits: %w", err)
	}

	response := &KitListResponse{
		Kits:   make([]KitResponse, len(kits)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i := range kits {
		response.Kits[i] = *s.toResponse(&kits[i])
	}
	return response, nil
}

// AddItem adds an item to a kit's base set
func (s *KitService) AddItem(tenantID, kitID uuid.UUID, req *KitItemRequest) (*KitItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ItemType.IsValid() {
		return nil, apperrors.NewValidationError("item_type", "must be equipment, material or tool")
	}

	if _, err := s.kitRepo.GetByID(tenantID, kitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	item := s.toItemModel(tenantID, kitID, nil, req)
	if err := s.kitRepo.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to create kit item: %w", err)
	}

	return s.toItemResponse(item), nil
}

// RemoveItem removes an item from a kit. The kit's base set must never become
// empty: removing the last base item is rejected.
func (s *KitService) RemoveItem(tenantID, kitID, itemID uuid.UUID) error {
	item, err := s.kitRepo.GetItemByID(tenantID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKitItemNotFound
		}
		return fmt.Errorf("failed to get kit item: %w", err)
	}
	if item.KitID != kitID {
		return apperrors.ErrKitItemNotFound
	}

	if item.VariantID == nil {
		count, err := s.kitRepo.CountItems(tenantID, kitID)
		if err != nil {
			return fmt.Errorf("failed to count kit items: %w", err)
		}
		if count <= 1 {
			return apperrors.ErrKitWouldBeEmpty
		}
	}

	if err := s.kitRepo.DeleteItem(tenantID, itemID); err != nil {
		return fmt.Errorf("failed to delete kit item: %w", err)
	}
	return nil
}

// AddVariant adds a condition variant with its own item set to a kit
func (s *KitService) AddVariant(tenantID, kitID uuid.UUID, req *CreateVariantRequest) (*KitVariantResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	for i := range req.Items {
		if !req.Items[i].ItemType.IsValid() {
			return nil, apperrors.NewValidationError("item_type", "must be equipment, material or tool")
		}
	}

	if _, err := s.kitRepo.GetByID(tenantID, kitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	// Variant and its item set go through one Create; no partial variant on
	// the error branch.
	variant := &models.KitVariant{
		TenantModel:  models.TenantModel{TenantID: tenantID},
		KitID:        kitID,
		Name:         req.Name,
		ConditionTag: req.ConditionTag,
	}
	for i := range req.Items {
		variant.Items = append(variant.Items, *s.toItemModel(tenantID, kitID, nil, &req.Items[i]))
	}
	if err := s.kitRepo.CreateVariant(variant); err != nil {
		return nil, fmt.Errorf("failed to create kit variant: %w", err)
	}

	return s.toVariantResponse(variant), nil
}

// Deactivate soft-deactivates a kit. Existing assignments keep referencing it;
// only new assignments are blocked.
func (s *KitService) Deactivate(tenantID, kitID uuid.UUID) (*KitResponse, error) {
	kit, err := s.kitRepo.GetByID(tenantID, kitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKitNotFound
		}
		return nil, fmt.Errorf("failed to get kit: %w", err)
	}

	kit.IsActive = false
	if err := s.kitRepo.Update(kit); err != nil {
		return nil, fmt.Errorf("failed to deactivate kit: %w", err)
	}

	return s.toResponse(kit), nil
}

// Delete hard-deletes a kit together with its items and variants. A kit that
// any assignment has ever referenced can only be deactivated, never deleted;
// past assignments must stay resolvable.
func (s *KitService) Delete(tenantID, kitID uuid.UUID) error {
	if _, err := s.kitRepo.GetByID(tenantID, kitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrKitNotFound
		}
		return fmt.Errorf("failed to get kit: %w", err)
	}

	referenced, err := s.kitRepo.IsReferenced(tenantID, kitID)
	if err != nil {
		return fmt.Errorf("failed to check kit references: %w", err)
	}
	if referenced {
		return apperrors.ErrKitReferenced
	}

	if err := s.kitRepo.Delete(tenantID, kitID); err != nil {
		return fmt.Errorf("failed to delete kit: %w", err)
	}
	return nil
}

func (s *KitService) toItemModel(tenantID, kitID uuid.UUID, variantID *uuid.UUID, req *KitItemRequest) *models.KitItem {
	required := true
	if req.Required != nil {
		required = *req.Required
	}
	return &models.KitItem{
		TenantModel: models.TenantModel{TenantID: tenantID},
		KitID:       kitID,
		VariantID:   variantID,
		ItemName:    req.ItemName,
		ItemType:    req.ItemType,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Required:    required,
	}
}

func (s *KitService) toItemResponse(item *models.KitItem) *KitItemResponse {
	return &KitItemResponse{
		ID:        item.ID,
		KitID:     item.KitID,
		VariantID: item.VariantID,
		ItemName:  item.ItemName,
		ItemType:  item.ItemType,
		Quantity:  item.Quantity,
		Unit:      item.Unit,
		Required:  item.Required,
	}
}

func (s *KitService) toVariantResponse(variant *models.KitVariant) *KitVariantResponse {
	response := &KitVariantResponse{
		ID:           variant.ID,
		KitID:        variant.KitID,
		Name:         variant.Name,
		ConditionTag: variant.ConditionTag,
	}
	for i := range variant.Items {
		response.Items = append(response.Items, *s.toItemResponse(&variant.Items[i]))
	}
	return response
}

func (s *KitService) toResponse(kit *models.Kit) *KitResponse {
	response := &KitResponse{
		ID:       kit.ID,
		Code:     kit.Code,
		Name:     kit.Name,
		IsActive: kit.IsActive,
	}
	for i := range kit.Items {
		// base set only; variant items ride along under their variant
		if kit.Items[i].VariantID == nil {
			response.Items = append(response.Items, *s.toItemResponse(&kit.Items[i]))
		}
	}
	for i := range kit.Variants {
		response.Variants = append(response.Variants, *s.toVariantResponse(&kit.Variants[i]))
	}
	return response
}
