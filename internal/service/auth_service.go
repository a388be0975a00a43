package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sefazor/qrtrack-backend/internal/models"
	"github.com/sefazor/qrtrack-backend/internal/repository"
	jwtPkg "github.com/sefazor/qrtrack-backend/pkg/jwt"
	"github.com/sefazor/qrtrack-backend/pkg/password"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so login failures don't reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwtPkg.Manager
}

func NewAuthService(userRepo repository.UserRepository, jwtManager *jwtPkg.Manager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// Register creates a new user and issues a session token for it.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, string, error) {
	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Password: hashed,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("token generation failed: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(req models.LoginRequest) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := password.Compare(user.Password, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("token generation failed: %w", err)
	}

	return user, token, nil
}

func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
