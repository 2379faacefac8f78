package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/ordering"
	"github.com/mmynk/shoplist/internal/storage"
)

var (
	errAuthRequired    = errors.New("authentication required")
	errNothingToUpdate = errors.New("nothing to update")
)

// requireUser returns the authenticated user ID set by the auth interceptor.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, errAuthRequired)
	}
	return userID, nil
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// storeError maps a storage failure to a Connect error.
func storeError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// orderingError maps an ordering engine failure to a Connect error.
func orderingError(err error) error {
	switch {
	case errors.Is(err, ordering.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ordering.ErrOutOfBounds):
		return connect.NewError(connect.CodeOutOfRange, err)
	case errors.Is(err, ordering.ErrInvalidIndex):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return storeError(err)
	}
}

// ownedList loads a list and checks it belongs to userID.
func ownedList(ctx context.Context, lists storage.ListStore, userID, listID string) (*models.List, error) {
	if listID == "" {
		return nil, invalidArgument("list_id required")
	}
	list, err := lists.GetList(ctx, listID)
	if err != nil {
		return nil, storeError(err)
	}
	if list.UserID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("list %s belongs to another user", listID))
	}
	return list, nil
}
