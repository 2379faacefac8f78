package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/shoplist/internal/models"
)

// MinCredentialLength applies to both usernames and passwords.
const MinCredentialLength = 3

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", MinCredentialLength)
	ErrShortUsername      = fmt.Errorf("username must be at least %d characters", MinCredentialLength)
	ErrUserExists         = errors.New("user already exists")
)

// UserStorage defines the interface for user persistence operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// WithCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (a *PasswordAuthenticator) WithCost(cost int) *PasswordAuthenticator {
	a.cost = cost
	return a
}

// NormalizeUsername trims and lowercases a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(strings.TrimSpace(credential)) < MinCredentialLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, username, credential string) (*models.User, error) {
	username = NormalizeUsername(username)
	if len(username) < MinCredentialLength {
		return nil, ErrShortUsername
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	// Check if username already exists
	existingUser, err := a.storage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := a.hash(credential)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(username, hashedPassword)
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the username and password, returning the user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByUsername(ctx, NormalizeUsername(username))
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := a.Verify(user, credential); err != nil {
		return nil, err
	}
	return user, nil
}

// Verify compares credential with the user's stored hash.
func (a *PasswordAuthenticator) Verify(user *models.User, credential string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// ChangeCredential verifies current and stores a hash of next.
func (a *PasswordAuthenticator) ChangeCredential(ctx context.Context, user *models.User, current, next string) error {
	if err := a.Verify(user, current); err != nil {
		return err
	}
	if err := a.ValidateCredential(next); err != nil {
		return err
	}

	hashed, err := a.hash(next)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	if err := a.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (a *PasswordAuthenticator) hash(credential string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
