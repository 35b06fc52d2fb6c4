package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yookve/api/internal/model"
	"github.com/yookve/api/pkg/jwt"
)

const (
	// bcrypt cost factor (10-14 recommended for production)
	bcryptCost = 12

	// Password constraints
	minPasswordLength = 8
	maxPasswordLength = 128
)

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, bool, error)
	GetByUsername(ctx context.Context, username string) (*model.User, bool, error)
}

// TokenService signs and validates access tokens
type TokenService interface {
	Sign(claims jwt.Claims) (string, error)
	Validate(token string) (*jwt.Claims, error)
	GetExpiration() time.Duration
}

// AuthService handles account registration, login and token validation
type AuthService struct {
	users  UserRepository
	tokens TokenService
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, tokens TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string
	Password string
	Name     string
	Email    string
}

// AuthResult is a successful registration or login
type AuthResult struct {
	User        *model.User
	AccessToken string
	TokenType   string
	ExpiresIn   int
}

// Register creates a new account. Usernames are unique; a duplicate
// submission fails before any write.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if req.Password == "" {
		return nil, ErrPasswordRequired
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(req.Password) > maxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	_, exists, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &model.User{
		Username:  username,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(strings.ToLower(req.Email)),
		Hash:      string(hash),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login authenticates a username/password pair
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	user, found, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetUser retrieves the account behind an authenticated request
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, found, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ValidateAccessToken validates a JWT and returns its claims. Satisfies
// the middleware auth contract.
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.tokens.Validate(token)
}

func (s *AuthService) issueToken(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Sign(jwt.Claims{
		Subject:  user.Username,
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(s.tokens.GetExpiration().Seconds()),
	}, nil
}
