package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-hub/internal/model"
	"gamestore-hub/internal/pkg/hash"
	"gamestore-hub/internal/pkg/jwtutil"
	"gamestore-hub/internal/repository"
)

const testJWTSecret = "test-secret"

// --- fakes ---

type fakeUserStore struct {
	users      map[uint]*model.User
	nextID     uint
	createErr  error
	touchCalls []uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*model.User), nextID: 1}
}

func (f *fakeUserStore) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByEmailOrUsername(email, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email || u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserStore) TouchLogin(id uint) error {
	f.touchCalls = append(f.touchCalls, id)
	if u, ok := f.users[id]; ok {
		now := time.Now()
		u.LastLogin = &now
		u.UpdatedAt = now
	}
	return nil
}

func newAuthService(store UserStore) *AuthService {
	return NewAuthService(store, testJWTSecret, time.Hour)
}

func registerUser(t *testing.T, svc *AuthService) *AuthResult {
	t.Helper()
	result, err := svc.Register(RegisterInput{
		Username: "gamer1",
		Email:    "g1@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return result
}

// --- Register ---

func TestRegisterSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	result := registerUser(t, svc)

	require.NotNil(t, result.User)
	assert.NotZero(t, result.User.ID)
	assert.Equal(t, "gamer1", result.User.Username)
	assert.Equal(t, "g1@example.com", result.User.Email)
	assert.Equal(t, model.RoleUser, result.User.Role)
	assert.True(t, result.User.IsActive)
	assert.False(t, result.User.EmailVerified)
	assert.Nil(t, result.User.LastLogin)

	assert.NotEqual(t, "secret1", result.User.PasswordHash)
	assert.True(t, hash.Matches("secret1", result.User.PasswordHash))

	claims, err := jwtutil.ParseToken(testJWTSecret, result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
}

func TestRegisterNormalizesEmailCase(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	result, err := svc.Register(RegisterInput{
		Username: "gamer1",
		Email:    "  G1@Example.COM ",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "g1@example.com", result.User.Email)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		message string
	}{
		{
			name:    "missing fields",
			input:   RegisterInput{Username: "gamer1"},
			message: "All fields are required",
		},
		{
			name:    "invalid email",
			input:   RegisterInput{Username: "gamer1", Email: "not-an-email", Password: "secret1"},
			message: "Invalid email format",
		},
		{
			name:    "invalid username",
			input:   RegisterInput{Username: "g!", Email: "g1@example.com", Password: "secret1"},
			message: "Username must be 3-20 characters and contain only letters, numbers, and underscores",
		},
		{
			name:    "short password",
			input:   RegisterInput{Username: "gamer1", Email: "g1@example.com", Password: "abc"},
			message: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeUserStore()
			svc := newAuthService(store)

			_, err := svc.Register(tt.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
			assert.Empty(t, store.users, "validation failures must not reach the store")
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registerUser(t, svc)

	_, err := svc.Register(RegisterInput{
		Username: "gamer2",
		Email:    "g1@example.com",
		Password: "secret1",
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "email", conflictErr.Field)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registerUser(t, svc)

	_, err := svc.Register(RegisterInput{
		Username: "gamer1",
		Email:    "other@example.com",
		Password: "secret1",
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "username", conflictErr.Field)
}

// --- Login ---

func TestLoginSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)

	result, err := svc.Login(LoginInput{Email: "g1@example.com", Password: "secret1"})
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, result.User.ID)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User.LastLogin)
	assert.Equal(t, []uint{registered.User.ID}, store.touchCalls)
}

func TestLoginIssuesFreshToken(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)

	// Issued-at has second granularity; step past it so the two tokens
	// cannot collide.
	time.Sleep(1100 * time.Millisecond)

	result, err := svc.Login(LoginInput{Email: "g1@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, registered.Token, result.Token)
}

func TestLoginWrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registerUser(t, svc)

	_, wrongPassErr := svc.Login(LoginInput{Email: "g1@example.com", Password: "wrong-pass"})
	_, unknownErr := svc.Login(LoginInput{Email: "nobody@example.com", Password: "secret1"})

	require.Error(t, wrongPassErr)
	require.Error(t, unknownErr)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredential)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredential)
	assert.Equal(t, wrongPassErr.Error(), unknownErr.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)
	store.users[registered.User.ID].IsActive = false

	_, err := svc.Login(LoginInput{Email: "g1@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrAccountDeactivated)
	assert.Empty(t, store.touchCalls)
}

func TestLoginMissingFields(t *testing.T) {
	svc := newAuthService(newFakeUserStore())

	_, err := svc.Login(LoginInput{Email: "g1@example.com"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Email and password are required", validationErr.Message)
}

// --- Profile ---

func TestProfileSuccess(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)

	user, err := svc.Profile(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, user.ID)
	assert.Equal(t, "gamer1", user.Username)
}

func TestProfileUserVanished(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)
	delete(store.users, registered.User.ID)

	_, err := svc.Profile(registered.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileDeactivatedAccount(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)
	registered := registerUser(t, svc)
	store.users[registered.User.ID].IsActive = false

	_, err := svc.Profile(registered.User.ID)
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

// --- race backstop ---

func TestRegisterDuplicateCaughtByIndex(t *testing.T) {
	store := newFakeUserStore()
	svc := newAuthService(store)

	// Pre-check sees nothing, insert trips the unique index.
	store.createErr = repository.ErrDuplicateEntry

	_, err := svc.Register(RegisterInput{
		Username: "gamer1",
		Email:    "g1@example.com",
		Password: "secret1",
	})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "username", conflictErr.Field)
}
