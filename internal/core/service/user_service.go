package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
)

// usernameRule: 4–36 characters, alphanumeric only. "valid_user1" fails the
// alphanum tag; "ValidUser1" passes.
const usernameRule = "required,alphanum,min=4,max=36"

const passwordRule = "required,min=8,max=36"

// UserService implements the admin-only account operations.
type UserService struct {
	users    ports.UserRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{
		users:    users,
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.Get(ctx)
}

// Create validates and inserts a new account. A taken username yields
// ErrAlreadyExists; a malformed username, password or role yields
// ErrInvalidData.
func (s *UserService) Create(ctx context.Context, username, password, role string) (string, error) {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	if s.validate.Var(username, usernameRule) != nil {
		return "", domain.ErrInvalidData
	}
	if s.validate.Var(password, passwordRule) != nil {
		return "", domain.ErrInvalidData
	}
	if !domain.ValidRole(role) {
		return "", domain.ErrInvalidData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Insert(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user", id).Str("role", role).Msg("user created")
	return id, nil
}

// ResetPassword replaces the password of the named account.
func (s *UserService) ResetPassword(ctx context.Context, username, password string) error {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}

	if s.validate.Var(password, passwordRule) != nil {
		return domain.ErrInvalidData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user.ID, user)
}

// ChangePassword replaces the caller's own password after verifying the
// current one.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return domain.ErrAccessDenied
	}
	if s.validate.Var(newPassword, passwordRule) != nil {
		return domain.ErrInvalidData
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user.ID, user)
}

// SetAdmin grants or revokes the admin role. Changing one's own role is
// rejected with ErrInvalidData.
func (s *UserService) SetAdmin(ctx context.Context, targetID, callerID string, admin bool) error {
	user, err := s.users.Find(ctx, targetID)
	if err != nil {
		return err
	}
	if user.ID == callerID {
		return domain.ErrInvalidData
	}

	if admin {
		user.Role = domain.RoleAdmin
	} else {
		user.Role = domain.RoleNormal
	}

	if err := s.users.Update(ctx, user.ID, user); err != nil {
		return err
	}

	s.logger.Info().Str("user", user.ID).Str("role", user.Role).Msg("role changed")
	return nil
}
