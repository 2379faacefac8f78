package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/shoplist/internal/auth"
	"github.com/mmynk/shoplist/internal/catalog"
	"github.com/mmynk/shoplist/internal/middleware"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/internal/storage/sqlite"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

const testPassword = "secret"

// testAuthInterceptor returns a Connect interceptor that authenticates every call as userID.
func testAuthInterceptor(userID string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			return next(middleware.WithUser(ctx, userID, "alice"), req)
		}
	}
}

type testEnv struct {
	store  *sqlite.SQLiteStore
	user   *models.User
	jwt    *auth.JWTManager
	auth   apiconnect.AuthServiceClient
	users  apiconnect.UserServiceClient
	lists  apiconnect.ListServiceClient
	items  apiconnect.ItemServiceClient
	prefs  apiconnect.PersonalizationServiceClient
	server *httptest.Server
}

// setupTestServer starts every service against a fresh SQLite file with one
// registered user, "alice", as the caller.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	user, err := authenticator.Register(context.Background(), "alice", testPassword)
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authenticated := connect.WithInterceptors(testAuthInterceptor(user.ID))

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store, logger),
		connect.WithInterceptors(middleware.OptionalAuth(jwtManager)),
	))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(store, authenticator, logger), authenticated))
	mux.Handle(apiconnect.NewListServiceHandler(NewListService(store, cat), authenticated))
	mux.Handle(apiconnect.NewItemServiceHandler(NewItemService(store, cat, nil), authenticated))
	mux.Handle(apiconnect.NewPersonalizationServiceHandler(NewPersonalizationService(store, cat), authenticated))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		store:  store,
		user:   user,
		jwt:    jwtManager,
		auth:   apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		users:  apiconnect.NewUserServiceClient(http.DefaultClient, server.URL),
		lists:  apiconnect.NewListServiceClient(http.DefaultClient, server.URL),
		items:  apiconnect.NewItemServiceClient(http.DefaultClient, server.URL),
		prefs:  apiconnect.NewPersonalizationServiceClient(http.DefaultClient, server.URL),
		server: server,
	}
}

func (e *testEnv) createList(t *testing.T, name string) *api.List {
	t.Helper()
	resp, err := e.lists.CreateList(context.Background(), connect.NewRequest(&api.CreateListRequest{Name: name}))
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	return resp.Msg.List
}

type seedItem struct {
	name     string
	category string
}

func (e *testEnv) createItems(t *testing.T, listID string, seeds ...seedItem) []*api.Item {
	t.Helper()
	out := make([]*api.Item, len(seeds))
	for i, s := range seeds {
		resp, err := e.items.CreateItem(context.Background(), connect.NewRequest(&api.CreateItemRequest{
			ListID:   listID,
			Name:     s.name,
			Category: s.category,
		}))
		if err != nil {
			t.Fatalf("CreateItem(%s) failed: %v", s.name, err)
		}
		out[i] = resp.Msg.Item
	}
	return out
}

func (e *testEnv) itemNames(t *testing.T, listID string) []string {
	t.Helper()
	resp, err := e.items.ListItems(context.Background(), connect.NewRequest(&api.ListItemsRequest{ListID: listID}))
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	names := make([]string, len(resp.Msg.Items))
	for i, item := range resp.Msg.Items {
		if item.Order != i {
			t.Errorf("item %s has order %d at position %d", item.Name, item.Order, i)
		}
		names[i] = item.Name
	}
	return names
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}
