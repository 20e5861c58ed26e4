package service

import (
	"errors"
	"mindscreen_backend/internal/config"
	"mindscreen_backend/internal/model"
	"mindscreen_backend/internal/repository"
	"mindscreen_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repository.UserRepository
	Orgs  *repository.OrganizationRepository
	Cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, orgs *repository.OrganizationRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Orgs: orgs, Cfg: cfg}
}

type RegisterRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register creates a new organization with its first admin account.
func (s *AuthService) Register(req RegisterRequest) (*AuthResult, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrUserNotFound) {
		return nil, err
	}

	org := &model.Organization{Name: req.OrganizationName}
	if err := s.Orgs.Create(org); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		OrganizationID: org.ID,
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hash),
		Role:           model.Admin,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(req LoginRequest) (*AuthResult, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, util.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) GetProfile(userID uint) (*model.User, error) {
	return s.Users.FindByID(userID)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
