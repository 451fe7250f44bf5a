package service

import (
	"context"
	"strings"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/agustiinveraa/inmoflow/pkg/utils"
	"github.com/google/uuid"
)

// Membership is the result of resolving a user's tenant position. It is
// looked up fresh on every request; tokens never carry agency or role data.
type Membership struct {
	AgencyID uuid.UUID
	Admin    bool
}

// AgencyService handles agency lifecycle and member management
type AgencyService struct {
	agencyRepo repository.AgencyRepository
	userRepo   repository.UserRepository
}

// NewAgencyService creates a new agency service
func NewAgencyService(agencyRepo repository.AgencyRepository, userRepo repository.UserRepository) *AgencyService {
	return &AgencyService{
		agencyRepo: agencyRepo,
		userRepo:   userRepo,
	}
}

// Membership resolves the agency and admin flag for a user. A database
// failure surfaces as an error distinct from "no agency": callers must not
// treat a failed lookup as a missing membership.
func (s *AgencyService) Membership(ctx context.Context, userID uuid.UUID) (*Membership, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthenticated
	}
	if user.AgencyID == nil {
		return nil, apperror.ErrNoAgencyAssigned
	}
	return &Membership{AgencyID: *user.AgencyID, Admin: user.AgencyAdmin}, nil
}

// CreateAgencyInput represents the input for creating an agency
type CreateAgencyInput struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// CreateAgency creates an agency and makes the caller its first admin.
// A user already belonging to an agency cannot create another one.
func (s *AgencyService) CreateAgency(ctx context.Context, userID uuid.UUID, input CreateAgencyInput) (*entity.Agency, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUnauthenticated
	}
	if user.AgencyID != nil {
		return nil, apperror.NewConflictError("You already belong to an agency")
	}

	agency := &entity.Agency{Name: strings.TrimSpace(input.Name)}
	if err := s.agencyRepo.Create(ctx, agency); err != nil {
		return nil, err
	}

	user.AgencyID = &agency.ID
	user.AgencyAdmin = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return agency, nil
}

// GetAgency returns the caller's agency
func (s *AgencyService) GetAgency(ctx context.Context, agencyID uuid.UUID) (*entity.Agency, error) {
	agency, err := s.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if agency == nil {
		return nil, apperror.NewNotFoundError("Agency")
	}
	return agency, nil
}

// UpdateAgencyInput represents the input for renaming an agency
type UpdateAgencyInput struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

// UpdateAgency renames the agency
func (s *AgencyService) UpdateAgency(ctx context.Context, agencyID uuid.UUID, input UpdateAgencyInput) (*entity.Agency, error) {
	agency, err := s.GetAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	agency.Name = strings.TrimSpace(input.Name)
	if err := s.agencyRepo.Update(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

// ListMembers returns every user belonging to the agency in the context
func (s *AgencyService) ListMembers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.ListByAgency(ctx)
}

// InviteMemberInput represents the input for inviting a member
type InviteMemberInput struct {
	FullName string `json:"full_name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Admin    bool   `json:"admin"`
}

// InviteMemberResult carries the invited member and, for a newly created
// account, the one-time password to hand over out of band.
type InviteMemberResult struct {
	User              *entity.User `json:"user"`
	TemporaryPassword string       `json:"temporary_password,omitempty"`
}

// InviteMember attaches a user to the agency. An existing unassigned account
// is adopted as-is; an unknown email gets a fresh account with a temporary
// password. Accounts already in another agency are rejected.
func (s *AgencyService) InviteMember(ctx context.Context, agencyID uuid.UUID, input InviteMemberInput) (*InviteMemberResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.AgencyID != nil {
			if *existing.AgencyID == agencyID {
				return nil, apperror.NewConflictError("This user is already a member of your agency")
			}
			return nil, apperror.NewConflictError("This user already belongs to another agency")
		}

		existing.AgencyID = &agencyID
		existing.AgencyAdmin = input.Admin
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return nil, err
		}
		return &InviteMemberResult{User: existing}, nil
	}

	tempPassword := utils.TemporaryPassword()
	hash, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:    strings.TrimSpace(input.FullName),
		Email:       email,
		Password:    hash,
		Provider:    "local",
		AgencyID:    &agencyID,
		AgencyAdmin: input.Admin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &InviteMemberResult{User: user, TemporaryPassword: tempPassword}, nil
}

// SetMemberAdmin grants or revokes the admin flag on a fellow member.
// Admins cannot change their own flag, so an agency always keeps one admin.
func (s *AgencyService) SetMemberAdmin(ctx context.Context, agencyID, callerID, memberID uuid.UUID, admin bool) (*entity.User, error) {
	if memberID == callerID {
		return nil, apperror.NewBadRequestError("You cannot change your own admin role")
	}

	member, err := s.memberOf(ctx, agencyID, memberID)
	if err != nil {
		return nil, err
	}

	member.AgencyAdmin = admin
	if err := s.userRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember detaches a fellow member from the agency. The account itself
// survives; it just loses tenant access.
func (s *AgencyService) RemoveMember(ctx context.Context, agencyID, callerID, memberID uuid.UUID) error {
	if memberID == callerID {
		return apperror.NewBadRequestError("You cannot remove yourself from the agency")
	}

	member, err := s.memberOf(ctx, agencyID, memberID)
	if err != nil {
		return err
	}

	member.AgencyID = nil
	member.AgencyAdmin = false
	return s.userRepo.Update(ctx, member)
}

func (s *AgencyService) memberOf(ctx context.Context, agencyID, memberID uuid.UUID) (*entity.User, error) {
	member, err := s.userRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.AgencyID == nil || *member.AgencyID != agencyID {
		return nil, apperror.NewNotFoundError("Member")
	}
	return member, nil
}
