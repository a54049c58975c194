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

// CrewMemberService handles crew member business logic
type CrewMemberService struct {
	crewRepo  repository.CrewMemberRepositoryInterface
	validator *validator.Validate
}

// NewCrewMemberService creates a new crew member service
func NewCrewMemberService(crewRepo repository.CrewMemberRepositoryInterface, validator *validator.Validate) *CrewMemberService {
	return &CrewMemberService{
		crewRepo:  crewRepo,
		validator: validator,
	}
}

// CreateCrewMemberRequest represents the request to create a crew member
type CreateCrewMemberRequest struct {
	FullName    string          `json:"full_name" validate:"required,min=1,max=100"`
	Email       string          `json:"email" validate:"required,email"`
	PhoneNumber string          `json:"phone_number,omitempty" validate:"max=30"`
	Role        models.CrewRole `json:"role,omitempty"`
}

// UpdateCrewMemberRequest represents the request to update a crew member
type UpdateCrewMemberRequest struct {
	FullName    *string          `json:"full_name,omitempty" validate:"omitempty,min=1,max=100"`
	PhoneNumber *string          `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	Role        *models.CrewRole `json:"role,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// CrewMemberResponse represents a crew member in responses
type CrewMemberResponse struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Role        models.CrewRole `json:"role"`
	IsActive    bool            `json:"is_active"`
}

// CrewMemberListResponse represents a paginated list of crew members
type CrewMemberListResponse struct {
	CrewMembers []CrewMemberResponse `json:"crew_members"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// Create creates a new crew member
func (s *CrewMemberService) Create(tenantID uuid.UUID, req *CreateCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.CrewRoleTechnician
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be technician, dispatcher or supervisor")
	}

	if _, err := s.crewRepo.GetByEmail(tenantID, req.Email); err == nil {
		return nil, apperrors.NewAlreadyExistsError("crew member", "with this email")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check crew member email: %w", err)
	}

	member := &models.CrewMember{
		TenantModel: models.TenantModel{TenantID: tenantID},
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    true,
	}
	if err := s.crewRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create crew member: %w", err)
	}

	return s.toResponse(member), nil
}

// GetByID retrieves a crew member by ID
func (s *CrewMemberService) GetByID(tenantID, id uuid.UUID) (*CrewMemberResponse, error) {
	member, err := s.crewRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}
	return s.toResponse(member), nil
}

// List retrieves crew members with pagination
func (s *CrewMemberService) List(tenantID uuid.UUID, activeOnly bool, limit, offset int) (*CrewMemberListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var members []models.CrewMember
	var total int64
	var err error
	if activeOnly {
		members, total, err = s.crewRepo.GetActive(tenantID, limit, offset)
	} else {
		members, total, err = s.crewRepo.GetAll(tenantID, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list crew members: %w", err)
	}

	response := &CrewMemberListResponse{
		CrewMembers: make([]CrewMemberResponse, len(members)),
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}
	for i := range members {
		response.CrewMembers[i] = *s.toResponse(&members[i])
	}
	return response, nil
}

// Update updates a crew member
func (s *CrewMemberService) Update(tenantID, id uuid.UUID, req *UpdateCrewMemberRequest) (*CrewMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	member, err := s.crewRepo.GetByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCrewMemberNotFound
		}
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		member.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "must be technician, dispatcher or supervisor")
		}
		member.Role = *req.Role
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.crewRepo.Update(member); err != nil {
		return nil, fmt.Errorf("failed to update crew member: %w", err)
	}

	return s.toResponse(member), nil
}

// Delete removes a crew member
func (s *CrewMemberService) Delete(tenantID, id uuid.UUID) error {
	if _, err := s.crewRepo.GetByID(tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCrewMemberNotFound
		}
		return fmt.Errorf("failed to get crew member: %w", err)
	}
	if err := s.crewRepo.Delete(tenantID, id); err != nil {
		return fmt.Errorf("failed to delete crew member: %w", err)
	}
	return nil
}

func (s *CrewMemberService) toResponse(member *models.CrewMember) *CrewMemberResponse {
	return &CrewMemberResponse{
		ID:          member.ID,
		FullName:    member.FullName,
		Email:       member.Email,
		PhoneNumber: member.PhoneNumber,
		Role:        member.Role,
		IsActive:    member.IsActive,
	}
}
