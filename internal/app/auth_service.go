package app

import (
	"errors"
	"strings"
	"time"

	"gamestore-hub/internal/model"
	"gamestore-hub/internal/pkg/hash"
	"gamestore-hub/internal/pkg/jwtutil"
	"gamestore-hub/internal/repository"
)

const (
	msgAllFieldsRequired = "All fields are required"
	msgEmailAndPassword  = "Email and password are required"
	msgInvalidEmail      = "Invalid email format"
	msgInvalidUsername   = "Username must be 3-20 characters and contain only letters, numbers, and underscores"
	msgInvalidPassword   = "Password must be at least 6 characters"
)

// UserStore is the slice of the user directory the auth flow needs.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByEmailOrUsername(email, username string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	TouchLogin(id uint) error
}

type AuthService struct {
	users         UserStore
	jwtSecret     string
	jwtExpiration time.Duration
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(users UserStore, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	// Emails are normalized to lower case on every path, so lookups and
	// the unique index agree on case.
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password

	if username == "" || email == "" || password == "" {
		return nil, &ValidationError{Message: msgAllFieldsRequired}
	}
	if !model.ValidateEmail(email) {
		return nil, &ValidationError{Message: msgInvalidEmail}
	}
	if !model.ValidateUsername(username) {
		return nil, &ValidationError{Message: msgInvalidUsername}
	}
	if !model.ValidatePassword(password) {
		return nil, &ValidationError{Message: msgInvalidPassword}
	}

	existing, err := s.users.GetByEmailOrUsername(email, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ConflictError{Field: collidingField(existing, email)}
	}

	passwordHash, err := hash.Password(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		// The pre-check lost a race; the unique index caught it.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, s.conflictAfterRace(email)
		}
		return nil, err
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	password := input.Password

	if email == "" || password == "" {
		return nil, &ValidationError{Message: msgEmailAndPassword}
	}
	if !model.ValidateEmail(email) {
		return nil, &ValidationError{Message: msgInvalidEmail}
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	if !hash.Matches(password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	if err := s.users.TouchLogin(user.ID); err != nil {
		return nil, err
	}
	now := time.Now()
	user.LastLogin = &now
	user.UpdatedAt = now

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Profile re-reads the directory so deactivation and deletion always
// win over whatever the token was issued against.
func (s *AuthService) Profile(userID uint) (*model.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}
	return user, nil
}

func collidingField(existing *model.User, email string) string {
	if existing.Email == email {
		return "email"
	}
	return "username"
}

func (s *AuthService) conflictAfterRace(email string) error {
	existing, err := s.users.GetByEmail(email)
	if err == nil && existing != nil {
		return &ConflictError{Field: "email"}
	}
	return &ConflictError{Field: "username"}
}
