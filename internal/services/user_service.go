package services

import (
	"context"
	"errors"
	"fmt"

	"estate-backend/internal/auth"
	"estate-backend/internal/cache"
	"estate-backend/internal/models"
	"estate-backend/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrEmailTaken         = errors.New("email already registered")
)

type UserService struct {
	userRepo   *repositories.UserRepository
	jwtManager *auth.JWTManager
}

func NewUserService(userRepo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{userRepo: userRepo, jwtManager: jwtManager}
}

// Signup registers the first admin or a new agent account
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		return nil, fmt.Errorf("name, email and a password of at least 8 characters are required")
	}

	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAgent,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials. When the account has 2FA enabled it returns a
// short-lived temp token instead of a session token; the caller completes
// login through the TOTP verify endpoint.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, *models.LoginStep1Response, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// Redis short-circuits bcrypt for repeat logins; a miss falls through
	if cachedID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); !ok || cachedID != user.ID {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, nil, ErrInvalidCredentials
		}
		cache.CacheAuth(ctx, req.Email, req.Password, user.ID)
	}

	if !user.IsActive {
		return nil, nil, ErrAccountSuspended
	}

	if user.TOTPEnabled {
		tempToken, err := s.jwtManager.GenerateTempToken(user)
		if err != nil {
			return nil, nil, err
		}
		return nil, &models.LoginStep1Response{
			Requires2FA: true,
			TempToken:   tempToken,
			Message:     "Enter your authenticator code to complete login",
		}, nil
	}

	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil, nil
}

// CompleteTOTPLogin issues the session token after a successful 2FA check
func (s *UserService) CompleteTOTPLogin(ctx context.Context, userID int) (*models.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountSuspended
	}
	token, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// CreateUser is the admin path for adding staff accounts
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if req.Role != models.RoleAdmin && req.Role != models.RoleAgent {
		return nil, fmt.Errorf("role must be admin or agent")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Phone = req.Phone
	if req.Role != "" {
		if req.Role != models.RoleAdmin && req.Role != models.RoleAgent {
			return nil, fmt.Errorf("role must be admin or agent")
		}
		user.Role = req.Role
	}

	user.PasswordHash = ""
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, fmt.Errorf("password must be at least 8 characters")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	return s.userRepo.Get(ctx, id)
}

func (s *UserService) SetActive(ctx context.Context, id int, active bool) error {
	return s.userRepo.ToggleActiveStatus(ctx, id, active)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.userRepo.Delete(ctx, id)
}
