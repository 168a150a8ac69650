package service

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devconnect/internal/auth"
	errs "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and identity lookups.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password and returns a signed token.
func (s *authService) Register(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", errs.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Avatar:       gravatarURL(email),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A registration racing the existence check trips the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", errs.ErrEmailTaken
		}
		return "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Generate(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// Login verifies credentials and returns a signed token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(user)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return token, nil
}

// CurrentUser loads the user referenced by a verified token. The token
// being valid does not guarantee the account still exists.
func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// gravatarURL derives a deterministic avatar URL from the email address.
func gravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&d=mm", md5.Sum([]byte(normalized)))
}
