package auth

import (
	"context"

	"github.com/mmynk/shoplist/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given username and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, username, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)

	// Verify checks a credential against an already loaded user.
	Verify(user *models.User, credential string) error

	// ChangeCredential replaces the user's credential after verifying the current one.
	ChangeCredential(ctx context.Context, user *models.User, current, next string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
