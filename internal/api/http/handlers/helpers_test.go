package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	httptransport "github.com/fieldops/installation-service/internal/api/http"
	"github.com/fieldops/installation-service/internal/api/http/handlers"
	"github.com/fieldops/installation-service/internal/auth"
	"github.com/fieldops/installation-service/internal/config"
	"github.com/fieldops/installation-service/internal/events"
	"github.com/fieldops/installation-service/internal/mocks"
	"github.com/fieldops/installation-service/internal/observability"
	"github.com/fieldops/installation-service/internal/persistence"
	"github.com/fieldops/installation-service/internal/service"
)

type testEnv struct {
	app      *fiber.App
	store    *mocks.Store
	sessions *mocks.SessionStoreMock
	users    *service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := mocks.NewStore()
	sessions := mocks.NewSessionStoreMock()
	dispatcher := events.NewInMemoryDispatcher()

	authCfg := config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            bcrypt.MinCost,
	}
	userService := service.NewUserService(authCfg, store.Users(), sessions)
	statusService := service.NewStatusService(store.Statuses(), dispatcher)
	installationService := service.NewInstallationService(store.Installations(), store.Statuses(), dispatcher)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Users:          handlers.NewUsersHandler(userService),
		Statuses:       handlers.NewStatusesHandler(statusService),
		Installations:  handlers.NewInstallationsHandler(installationService),
		AuthMiddleware: auth.NewAuthMiddleware(userService.TokenManager(), store.Users(), sessions),
	})

	return &testEnv{app: app, store: store, sessions: sessions, users: userService}
}

// registerUser provisions an account and returns its bearer token.
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	_, token, _, err := e.users.Register(context.Background(), email, "testpass123", "Test User")
	require.NoError(t, err)
	return token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

// decodeBody parses a JSON response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

// dataObject returns the "data" field as an object.
func dataObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	data, ok := decodeBody(t, resp)["data"].(map[string]any)
	require.True(t, ok)
	return data
}

// dataList returns the "data" field as a list of objects.
func dataList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	raw, ok := decodeBody(t, resp)["data"].([]any)
	require.True(t, ok)

	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		item, ok := entry.(map[string]any)
		require.True(t, ok)
		items = append(items, item)
	}
	return items
}
