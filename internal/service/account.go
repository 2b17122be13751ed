package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

var (
	ErrMissingFields  = errors.New("all fields required")
	ErrEmailTaken     = errors.New("email already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid password")
)

type AccountService struct {
	users    UserRepository
	sessions SessionRepository
}

func NewAccountService(users UserRepository, sessions SessionRepository) *AccountService {
	return &AccountService{users: users, sessions: sessions}
}

func (s *AccountService) Signup(name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return ErrMissingFields
	}

	if _, err := s.users.GetUserByEmail(email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Wallet:       0,
	}
	return s.users.CreateUser(user)
}

// Login verifies credentials and opens a session. The returned token is
// the only server-side credential; the stored hash never leaves here.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.users.GetUserByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrBadCredentials
	}

	user.PasswordHash = ""
	token := uuid.New().String()
	if err := s.sessions.Save(ctx, token, user); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}
	return user, token, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AccountService) Session(ctx context.Context, token string) (*domain.User, error) {
	return s.sessions.Get(ctx, token)
}

func (s *AccountService) ListUsers() ([]domain.User, error) {
	return s.users.ListUsers()
}

func (s *AccountService) UpdateUser(id int, name, role string, wallet float64) error {
	affected, err := s.users.UpdateUser(id, name, role, wallet)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *AccountService) DeleteUser(id int) error {
	affected, err := s.users.DeleteUser(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

var _ AccountServiceInterface = (*AccountService)(nil)
