package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/noteshq/notesapi/internal/auth"
	"github.com/noteshq/notesapi/internal/common"
	"github.com/noteshq/notesapi/internal/models"
)

// Service owns account lifecycle: registration, password login, and the
// admin-only management operations. Role checks happen at the transport
// layer; the service assumes its caller was already authorized.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates an account with a hashed password and a fresh API key.
// Duplicate usernames fail without touching the existing record.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadRequest, err)
	}

	if _, err := s.store.GetByUsername(ctx, req.Username); err == nil {
		return nil, common.ErrUserExists
	} else if !errors.Is(err, common.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	key, err := auth.NewAPIKey()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		APIKey:       &key,
	}
	if err := s.store.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a password login. Unknown username and wrong password
// collapse into the same error so callers cannot probe for accounts.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.store.List(ctx)
}

// Deactivate flips is_active off. Credential resolution rejects the user on
// the very next request; issued tokens do not need to be revoked.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) error {
		u.IsActive = false
		return nil
	})
}

func (s *Service) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string) (*models.User, error) {
	return s.update(ctx, id, func(u *models.User) error {
		hash, err := auth.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
		return nil
	})
}

func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBadRequest, err)
	}
	return s.update(ctx, id, func(u *models.User) error {
		u.Role = parsed
		return nil
	})
}

// DeleteByUsername removes the account and returns the removed record.
func (s *Service) DeleteByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.store.Delete(ctx, username); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) update(ctx context.Context, id uuid.UUID, mutate func(*models.User) error) (*models.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(user); err != nil {
		return nil, err
	}
	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
