package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"blog/internal/models"
	"blog/internal/store"
)

var (
	ErrEmailTaken         = errors.New("auth: email already taken")
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidInput       = errors.New("auth: invalid input")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Service implements the account operations on top of the user store.
type Service struct {
	users *store.UserStore
}

func NewService(users *store.UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new account. The password is stored as a bcrypt hash.
func (s *Service) Register(email, password string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: bad email format", ErrInvalidInput)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password required", ErrInvalidInput)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	u, err := s.users.Create(email, hash)
	if errors.Is(err, store.ErrEmailTaken) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("auth: create user: %w", err)
	}
	return u, nil
}

// Authenticate looks the user up by email and verifies the password against
// the stored hash.
func (s *Service) Authenticate(email, password string) (*models.User, error) {
	u, err := s.users.ByEmail(strings.TrimSpace(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("auth: query user: %w", err)
	}
	if !CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
