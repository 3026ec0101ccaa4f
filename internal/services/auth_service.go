package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SandMart23/Aplikasi-Bawang/internal/repositories"
	"github.com/SandMart23/Aplikasi-Bawang/pkg/utils"
)

// --- Custom Service Errors ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- DTOs ---

// LoginRequest DTO
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse DTO
type AuthResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
}

// SessionInfo mirrors the stored login flag for the renderer.
type SessionInfo struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*SessionInfo, error)
}

// --- authService Implementation ---

// authService authenticates the single shop operator. Credentials come from
// configuration; alongside the JWT it maintains the storefront's
// isLoggedIn/username keys through SessionRepository.
type authService struct {
	sessionRepo  repositories.SessionRepository
	username     string
	passwordHash []byte
}

// NewAuthService creates a new instance of AuthService. passwordHash must
// be a bcrypt hash of the operator password.
func NewAuthService(sessionRepo repositories.SessionRepository, username string, passwordHash []byte) AuthService {
	return &authService{
		sessionRepo:  sessionRepo,
		username:     username,
		passwordHash: passwordHash,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username != s.username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(req.Username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	if err := s.sessionRepo.SetLoggedIn(ctx, req.Username); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &AuthResponse{Username: req.Username, AccessToken: token}, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.sessionRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *authService) CurrentSession(ctx context.Context) (*SessionInfo, error) {
	loggedIn, username, err := s.sessionRepo.Current(ctx)
	if err != nil {
		return nil, err
	}
	return &SessionInfo{LoggedIn: loggedIn, Username: username}, nil
}
