package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rodrigojesussilva/Sem-errar-sub001/internal/models"
	"github.com/Rodrigojesussilva/Sem-errar-sub001/pkg/utils"
	"github.com/jackc/pgx/v5"
)

type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

type AccountService struct {
	users AccountStore
}

func NewAccountService(users AccountStore) *AccountService {
	return &AccountService{users: users}
}

// EnsureAdmin creates the bootstrap administrator unless an account with the
// same email already exists. It reports whether a row was inserted.
func (s *AccountService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, errors.New("admin email and password are required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return false, nil
	}
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashed,
		Admin:        true,
	}
	if err := s.users.CreateUser(ctx, admin); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
