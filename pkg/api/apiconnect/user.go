package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/pkg/api"
)

// UserServiceName is the fully-qualified name of the UserService service.
const UserServiceName = "shoplist.v1.UserService"

const (
	UserServiceGetProfileProcedure     = "/shoplist.v1.UserService/GetProfile"
	UserServiceUpdateProfileProcedure  = "/shoplist.v1.UserService/UpdateProfile"
	UserServiceChangePasswordProcedure = "/shoplist.v1.UserService/ChangePassword"
	UserServiceDeleteAccountProcedure  = "/shoplist.v1.UserService/DeleteAccount"
)

// UserServiceClient is a client for the shoplist.v1.UserService service.
type UserServiceClient interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	DeleteAccount(context.Context, *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error)
}

// NewUserServiceClient constructs a client for the shoplist.v1.UserService service.
// baseURL is the server root, e.g. http://localhost:8080.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &userServiceClient{
		getProfile:     connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+UserServiceGetProfileProcedure, opts...),
		updateProfile:  connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+UserServiceUpdateProfileProcedure, opts...),
		changePassword: connect.NewClient[api.ChangePasswordRequest, api.ChangePasswordResponse](httpClient, baseURL+UserServiceChangePasswordProcedure, opts...),
		deleteAccount:  connect.NewClient[api.DeleteAccountRequest, api.DeleteAccountResponse](httpClient, baseURL+UserServiceDeleteAccountProcedure, opts...),
	}
}

type userServiceClient struct {
	getProfile     *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile  *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
	changePassword *connect.Client[api.ChangePasswordRequest, api.ChangePasswordResponse]
	deleteAccount  *connect.Client[api.DeleteAccountRequest, api.DeleteAccountResponse]
}

func (c *userServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *userServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *userServiceClient) ChangePassword(ctx context.Context, req *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	return c.changePassword.CallUnary(ctx, req)
}

func (c *userServiceClient) DeleteAccount(ctx context.Context, req *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	return c.deleteAccount.CallUnary(ctx, req)
}

// UserServiceHandler is implemented by the server side of shoplist.v1.UserService.
// UserService manages the caller's profile and account.
type UserServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error)
	DeleteAccount(context.Context, *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(UserServiceName, map[string]http.Handler{
		UserServiceGetProfileProcedure:     connect.NewUnaryHandler(UserServiceGetProfileProcedure, svc.GetProfile, opts...),
		UserServiceUpdateProfileProcedure:  connect.NewUnaryHandler(UserServiceUpdateProfileProcedure, svc.UpdateProfile, opts...),
		UserServiceChangePasswordProcedure: connect.NewUnaryHandler(UserServiceChangePasswordProcedure, svc.ChangePassword, opts...),
		UserServiceDeleteAccountProcedure:  connect.NewUnaryHandler(UserServiceDeleteAccountProcedure, svc.DeleteAccount, opts...),
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return nil, unimplemented(UserServiceGetProfileProcedure)
}

func (UnimplementedUserServiceHandler) UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return nil, unimplemented(UserServiceUpdateProfileProcedure)
}

func (UnimplementedUserServiceHandler) ChangePassword(context.Context, *connect.Request[api.ChangePasswordRequest]) (*connect.Response[api.ChangePasswordResponse], error) {
	return nil, unimplemented(UserServiceChangePasswordProcedure)
}

func (UnimplementedUserServiceHandler) DeleteAccount(context.Context, *connect.Request[api.DeleteAccountRequest]) (*connect.Response[api.DeleteAccountResponse], error) {
	return nil, unimplemented(UserServiceDeleteAccountProcedure)
}
