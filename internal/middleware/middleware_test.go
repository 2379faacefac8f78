package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/shoplist/internal/auth"
	"github.com/mmynk/shoplist/internal/models"
	"github.com/mmynk/shoplist/pkg/api"
	"github.com/mmynk/shoplist/pkg/api/apiconnect"
)

// whoami echoes the identity the interceptors put in the context.
type whoami struct {
	apiconnect.UnimplementedAuthServiceHandler
}

func (whoami) GetCurrentUser(ctx context.Context, _ *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	if GetUserID(ctx) == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("anonymous"))
	}
	return connect.NewResponse(&api.GetCurrentUserResponse{
		User: &api.User{ID: GetUserID(ctx), Username: GetUsername(ctx)},
	}), nil
}

func newClient(t *testing.T, opts ...connect.HandlerOption) apiconnect.AuthServiceClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(whoami{}, opts...))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
}

func call(client apiconnect.AuthServiceClient, header string) (*api.User, error) {
	req := connect.NewRequest(&api.GetCurrentUserRequest{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	resp, err := client.GetCurrentUser(context.Background(), req)
	if err != nil {
		return nil, err
	}
	return resp.Msg.User, nil
}

func TestRequireAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	client := newClient(t, connect.WithInterceptors(RequireAuth(jwtManager)))

	user, err := call(client, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "alice", user.Username)

	for _, header := range []string{"", "Bearer", "Basic " + token, "Bearer garbage"} {
		_, err := call(client, header)
		assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err), "header %q", header)
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("secret", time.Hour)
	token, err := jwtManager.Generate(&models.User{ID: "u1", Username: "alice"})
	require.NoError(t, err)

	client := newClient(t, connect.WithInterceptors(OptionalAuth(jwtManager)))

	user, err := call(client, "bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	// Anonymous calls reach the handler, which decides.
	_, err = call(client, "Bearer garbage")
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, "anonymous", connectErr.Message())
}

func TestLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	client := newClient(t, connect.WithInterceptors(LoggingInterceptor(logger)))

	_, err := call(client, "")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "RPC error")
	assert.Contains(t, out, "procedure="+apiconnect.AuthServiceGetCurrentUserProcedure)
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "code=unauthenticated")
}

func TestRPCOutcome(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel slog.Level
		wantMsg   string
	}{
		{"success", nil, slog.LevelInfo, "RPC ok"},
		{"client error", connect.NewError(connect.CodeNotFound, errors.New("nope")), slog.LevelWarn, "RPC error"},
		{"internal", connect.NewError(connect.CodeInternal, errors.New("db down")), slog.LevelError, "RPC failed"},
		{"plain error", errors.New("boom"), slog.LevelError, "RPC failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, msg := rpcOutcome(tt.err)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	client := newClient(t, connect.WithInterceptors(metrics.Interceptor()))

	_, _ = call(client, "")
	_, _ = call(client, "")

	got := counterValue(t, reg, "shoplist_rpc_requests_total", map[string]string{
		"procedure": apiconnect.AuthServiceGetCurrentUserProcedure,
		"code":      connect.CodeUnauthenticated.String(),
	})
	assert.Equal(t, 2.0, got)

	metrics.ObserveReorder("category", nil)
	metrics.ObserveReorder("category", errors.New("boom"))
	assert.Equal(t, 1.0, counterValue(t, reg, "shoplist_reorder_operations_total", map[string]string{"kind": "category", "result": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "shoplist_reorder_operations_total", map[string]string{"kind": "category", "result": "error"}))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveReorder("item", nil) })
}
