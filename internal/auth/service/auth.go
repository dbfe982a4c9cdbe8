package service

import (
	"context"
	"errors"

	autherrors "paintbooking/internal/auth/errors"
	"paintbooking/internal/auth/repository"
	"paintbooking/internal/auth/validator"
	"paintbooking/pkg/config"
	apperrors "paintbooking/pkg/errors"
	"paintbooking/pkg/events"
	"paintbooking/pkg/hasher"
	"paintbooking/pkg/model"
	"paintbooking/pkg/sanitizer"
)

type AuthService interface {
	Register(ctx context.Context, reg *model.Registration) error
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	repo      repository.UserRepository
	hasher    hasher.Hasher
	validator *validator.UserValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewAuthService(
	repo repository.UserRepository,
	credHasher hasher.Hasher,
	userValidator *validator.UserValidator,
	publisher events.Publisher,
	cfg *config.Config,
) AuthService {
	return &authService{
		repo:      repo,
		hasher:    credHasher,
		validator: userValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Register creates an account. The confirm-password check runs before any
// hashing or persistence so a mismatch has no side effects.
func (s *authService) Register(ctx context.Context, reg *model.Registration) error {
	if reg.Password != reg.ConfirmPassword {
		return apperrors.Validation("Passwords do not match")
	}

	s.sanitize(reg)
	if err := s.validator.ValidateRegistration(reg); err != nil {
		s.cfg.Log.Warn("Registration validation failed", "error", err)
		return apperrors.Validation(err.Error())
	}

	passwordHash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return apperrors.Internal("Failed to hash password", err)
	}

	user := &model.User{
		FullName:     reg.FullName,
		Email:        reg.Email,
		PasswordHash: passwordHash,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, autherrors.ErrDuplicateEmail) {
			return apperrors.Conflict(err.Error())
		}
		s.cfg.Log.Error("Failed to create user", "email", user.Email, "error", err)
		return apperrors.Internal("Failed to register user", err)
	}

	s.publishEvent(ctx, events.TypeUserRegistered, user.ID, map[string]string{
		"user_id": user.ID,
		"email":   user.Email,
	})

	s.cfg.Log.Info("User registered successfully", "id", user.ID, "email", user.Email)
	return nil
}

// Login verifies credentials and returns the account. An unknown email fails
// before any hash comparison happens.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = sanitizer.SanitizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, autherrors.ErrNotFound) {
			return nil, apperrors.NotFound("No user found with that email")
		}
		s.cfg.Log.Error("Failed to look up user", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to look up user", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, apperrors.Unauthorized("Incorrect password")
	}

	s.cfg.Log.Info("User logged in", "id", user.ID)
	return user, nil
}

func (s *authService) sanitize(reg *model.Registration) {
	reg.FullName = sanitizer.SanitizeName(reg.FullName)
	reg.Email = sanitizer.SanitizeEmail(reg.Email)
}

func (s *authService) publishEvent(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.Publish(ctx, key, eventType, payload); err != nil {
		s.cfg.Log.Warn("Failed to publish event", "type", eventType, "error", err)
	}
}
