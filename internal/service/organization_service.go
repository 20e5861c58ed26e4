package service

import (
	"errors"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type OrganizationService struct {
	Orgs  *repository.OrganizationRepository
	Users *repository.UserRepository
}

func NewOrganizationService(orgs *repository.OrganizationRepository, users *repository.UserRepository) *OrganizationService {
	return &OrganizationService{Orgs: orgs, Users: users}
}

func (s *OrganizationService) Get(id uint) (*model.Organization, error) {
	return s.Orgs.FindByID(id)
}

type OrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *OrganizationService) Update(id uint, req OrganizationRequest) (*model.Organization, error) {
	org, err := s.Orgs.FindByID(id)
	if err != nil {
		return nil, err
	}
	org.Name = req.Name
	org.Description = req.Description
	if err := s.Orgs.Update(org); err != nil {
		return nil, err
	}
	return org, nil
}

func (s *OrganizationService) ListMembers(orgID uint, page, limit int) ([]model.User, int64, error) {
	return s.Users.ListByOrganization(orgID, page, limit)
}

type MemberRequest struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required,min=8"`
	Role     model.UserRole `json:"role" binding:"required"`
}

// CreateMember adds a clinician or admin account to an existing organization.
func (s *OrganizationService) CreateMember(orgID uint, req MemberRequest) (*model.User, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		OrganizationID: orgID,
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hash),
		Role:           req.Role,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *OrganizationService) RemoveMember(orgID, userID uint) error {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return err
	}
	if user.OrganizationID != orgID {
		return util.ErrPermissionDenied
	}
	return s.Users.Delete(userID)
}
