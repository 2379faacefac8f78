package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"
	"unicode/utf8"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/auth"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

const (
	maxBioLength    = 500
	maxAvatarLength = 1_000_000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService implements the UserService RPC interface.
type UserService struct {
	apiconnect.UnimplementedUserServiceHandler
	users         storage.UserStore
	authenticator auth.Authenticator
	logger        *slog.Logger
}

// NewUserService creates a profile service.
func NewUserService(users storage.UserStore, authenticator auth.Authenticator, logger *slog.Logger) *UserService {
	return &UserService{
		users:         users,
		authenticator: authenticator,
		logger:        logger,
	}
}

func (s *UserService) currentUser(ctx context.Context) (*models.User, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if user == nil {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("user not found"))
	}
	return user, nil
}

// GetProfile returns the caller's profile.
func (s *UserService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetProfileResponse{User: toAPIUser(user)}), nil
}

func validateProfile(msg *api.UpdateProfileRequest) error {
	if msg.Email != nil && *msg.Email != "" && !emailPattern.MatchString(*msg.Email) {
		return errors.New("invalid email format")
	}
	if msg.Bio != nil && utf8.RuneCountInString(*msg.Bio) > maxBioLength {
		return fmt.Errorf("bio must be %d characters or less", maxBioLength)
	}
	if msg.Avatar != nil && len(*msg.Avatar) > maxAvatarLength {
		return errors.New("avatar image is too large")
	}
	return nil
}

// UpdateProfile changes the email, bio and avatar fields that are set.
func (s *UserService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("UpdateProfile request", "user_id", user.ID)

	if err := validateProfile(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if req.Msg.Email == nil && req.Msg.Bio == nil && req.Msg.Avatar == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNothingToUpdate)
	}

	if req.Msg.Email != nil {
		user.Email = *req.Msg.Email
	}
	if req.Msg.Bio != nil {
		user.Bio = *req.Msg.Bio
	}
	if req.Msg.Avatar != nil {
		user.Avatar = *req.Msg.Avatar
	}
	user.UpdatedAt = time.Now().Unix()

	if err := s.users.UpdateUser(ctx, user); err != nil {
		s.logger.Error("UpdateProfile failed", "user_id", user.ID, "error", err)
		return nil, storeError(err)
	}
	return connect.NewResponse(&api.UpdateProfileResponse{User: toAPIUser(user)}), nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (s *UserService) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("ChangePassword request", "user_id", user.ID)

	if req.Msg.CurrentPassword == "" || req.Msg.NewPassword == "" {
		return nil, invalidArgument("current password and new password are required")
	}

	user.UpdatedAt = time.Now().Unix()
	if err := s.authenticator.ChangeCredential(ctx, user, req.Msg.CurrentPassword, req.Msg.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid current password"))
		case errors.Is(err, auth.ErrWeakPassword):
			return nil, connect.NewError(connect.CodeInvalidArgument, err)
		}
		s.logger.Error("ChangePassword failed", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Password changed", "user_id", user.ID)
	return connect.NewResponse(&api.ChangePasswordResponse{}), nil
}

// DeleteAccount removes the caller together with all lists, items and
// personalization. The password must be confirmed.
func (s *UserService) DeleteAccount(ctx context.Context, req *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("DeleteAccount request", "user_id", user.ID)

	if req.Msg.Password == "" {
		return nil, invalidArgument("password is required to delete account")
	}
	if err := s.authenticator.Verify(user, req.Msg.Password); err != nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid password"))
	}

	if err := s.users.DeleteUser(ctx, user.ID); err != nil {
		s.logger.Error("DeleteAccount failed", "user_id", user.ID, "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Account deleted", "user_id", user.ID)
	return connect.NewResponse(&api.DeleteAccountResponse{}), nil
}
