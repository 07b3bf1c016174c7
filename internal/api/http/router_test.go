package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/api/http/handlers"
	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/config"
	"github.com/spec-kit/showroom-crm/internal/events"
	"github.com/spec-kit/showroom-crm/internal/observability"
	"github.com/spec-kit/showroom-crm/internal/repository"
	"github.com/spec-kit/showroom-crm/internal/service"
)

type testServer struct {
	app     *fiber.App
	metrics *observability.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := repository.NewMemoryStore()
	hash, err := auth.HashPassword("password", 4)
	require.NoError(t, err)
	_, err = repository.Seed(ctx, store, hash)
	require.NoError(t, err)

	logger := zap.NewNop()
	metrics := observability.NewMetrics("showroom-crm-test")
	dispatcher := events.NewInMemoryDispatcher()
	sessions := repository.NewRedisSessionRepository(rdb, "test:session:")
	tokens := auth.NewTokenManager("router-test-secret", 15)

	authSvc := service.NewAuthService(config.AuthConfig{SessionTTLMinutes: 60}, service.AuthDependencies{
		AccountRepo:  store.Accounts,
		SessionRepo:  sessions,
		TokenManager: tokens,
		Logger:       logger,
	})
	interactionSvc := service.NewInteractionService(service.InteractionDependencies{
		InteractionRepo: store.Interactions,
		CustomerRepo:    store.Customers,
		EscalationRepo:  store.Escalations,
		Dispatcher:      dispatcher,
		Metrics:         metrics,
		Logger:          logger,
	})
	userSvc := service.NewUserService(service.UserDependencies{
		AccountRepo:    store.Accounts,
		Dispatcher:     dispatcher,
		Metrics:        metrics,
		Logger:         logger,
		BcryptCost:     4,
		DefaultCountry: "AE",
	})

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, 0)
	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("showroom-crm", "test", map[string]handlers.Dependency{}),
		Auth:           handlers.NewAuthHandler(authSvc),
		Customers:      handlers.NewCustomersHandler(service.NewCustomerService(store.Customers, metrics)),
		Interactions:   handlers.NewInteractionsHandler(interactionSvc),
		Escalations:    handlers.NewEscalationsHandler(service.NewEscalationService(store.Escalations, dispatcher, metrics, logger)),
		Users:          handlers.NewUsersHandler(userSvc),
		Analytics:      handlers.NewAnalyticsHandler(service.NewAnalyticsService(store.Customers, store.Interactions, metrics)),
		AuthMiddleware: auth.NewAuthMiddleware(tokens, sessions),
		Metrics:        metrics,
	})
	return &testServer{app: app, metrics: metrics}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (s *testServer) login(t *testing.T, email string) string {
	t.Helper()
	status, body := s.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": "password"})
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func dataIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	items, ok := body["data"].([]any)
	require.True(t, ok, body)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.(map[string]any)["id"].(string))
	}
	return out
}

func errorCode(body map[string]any) string {
	envelope, _ := body["error"].(map[string]any)
	code, _ := envelope["code"].(string)
	return code
}

func errorMessage(body map[string]any) string {
	envelope, _ := body["error"].(map[string]any)
	msg, _ := envelope["message"].(string)
	return msg
}

func navIDs(body map[string]any) []string {
	data := body["data"].(map[string]any)
	out := []string{}
	for _, item := range data["navigation"].([]any) {
		out = append(out, item.(map[string]any)["id"].(string))
	}
	return out
}

func TestPublicEndpoints(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodGet, "/health/live", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alive", body["status"])

	status, body = srv.do(t, http.MethodGet, "/health/ready", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	status, body = srv.do(t, http.MethodGet, "/policy", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 3)

	status, body = srv.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "john.sales@showroom.example", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))

	status, body = srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodGet, "/customers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))

	status, _ = srv.do(t, http.MethodGet, "/customers", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestSalesPersonView(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "john.sales@showroom.example")

	status, body := srv.do(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"overview", "interactions", "interaction-timeline", "my-customers", "follow-ups", "escalations"}, navIDs(body))

	status, body = srv.do(t, http.MethodGet, "/customers", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"1"}, dataIDs(t, body))

	status, body = srv.do(t, http.MethodGet, "/customers/3", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	for _, path := range []string{"/escalations", "/users", "/analytics/performance", "/analytics/team", "/analytics/showrooms"} {
		status, body = srv.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, status, path)
		assert.Equal(t, "FORBIDDEN", errorCode(body), path)
	}

	status, body = srv.do(t, http.MethodGet, "/overview", token, nil)
	require.Equal(t, http.StatusOK, status)
	overview := body["data"].(map[string]any)
	assert.EqualValues(t, 1, overview["total_customers"])
}

func TestManagerView(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "jane.manager@showroom.example")

	status, body := srv.do(t, http.MethodGet, "/customers", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"1", "2", "4"}, dataIDs(t, body))

	status, body = srv.do(t, http.MethodGet, "/escalations", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"ESC-001", "ESC-003"}, dataIDs(t, body))
	stats := body["stats"].(map[string]any)
	assert.EqualValues(t, 2, stats["total"])
	assert.Equal(t, "11h", stats["avg_response_time"])

	status, body = srv.do(t, http.MethodPatch, "/escalations/ESC-001/status", token, map[string]string{"status": "resolved"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "resolved", body["data"].(map[string]any)["status"])

	status, body = srv.do(t, http.MethodPatch, "/escalations/ESC-001/status", token, map[string]string{"status": "closed"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))

	status, body = srv.do(t, http.MethodGet, "/users?role=sales_person", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"1", "2"}, dataIDs(t, body))
}

func TestInteractionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	sales := srv.login(t, "john.sales@showroom.example")
	hq := srv.login(t, "mike.executive@showroom.example")

	status, body := srv.do(t, http.MethodPost, "/interactions", sales, map[string]string{"customer_id": "1"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing Information", errorMessage(body))

	status, body = srv.do(t, http.MethodPost, "/interactions", sales, map[string]string{
		"customer_id": "1", "type": "call", "message": "Called about the premium package",
	})
	require.Equal(t, http.StatusCreated, status, body)
	created := body["data"].(map[string]any)
	assert.Equal(t, "completed", created["status"])
	assert.EqualValues(t, 0, created["escalation_level"])
	assert.Equal(t, "AI Summary: call interaction with John Smith. Called about the premium package...", created["ai_summary"])

	status, body = srv.do(t, http.MethodPost, "/interactions/1/escalate", hq, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Cannot Escalate", errorMessage(body))

	status, body = srv.do(t, http.MethodPost, "/interactions/1/escalate", sales, map[string]string{"reason": "Pricing exception"})
	require.Equal(t, http.StatusOK, status, body)
	data := body["data"].(map[string]any)
	assert.EqualValues(t, 1, data["interaction"].(map[string]any)["escalation_level"])
	assert.Equal(t, "Showroom Manager", data["escalation"].(map[string]any)["escalated_to"])

	status, _ = srv.do(t, http.MethodPost, "/interactions/1/escalate", sales, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = srv.do(t, http.MethodGet, "/interactions/timeline", sales, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created["id"], dataIDs(t, body)[0])
}

func TestHeadOfficeCreatesUsers(t *testing.T) {
	srv := newTestServer(t)
	hq := srv.login(t, "mike.executive@showroom.example")

	payload := map[string]any{
		"name": "Nadia Karim", "email": "nadia@showroom.example", "password": "long-enough",
		"role": "showroom_manager", "showroom_code": "SR003",
	}
	status, body := srv.do(t, http.MethodPost, "/users", hq, payload)
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "Showroom Manager", body["data"].(map[string]any)["role_name"])

	status, body = srv.do(t, http.MethodPost, "/users", hq, payload)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", errorCode(body))

	status, body = srv.do(t, http.MethodPatch, "/users/2/status", hq, map[string]string{"status": "inactive"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "inactive", body["data"].(map[string]any)["status"])

	status, _ = srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ahmed.hassan@showroom.example", "password": "password"})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "jane.manager@showroom.example")

	status, _ := srv.do(t, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = srv.do(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, body := srv.do(t, http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", errorCode(body))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "john.sales@showroom.example")
	srv.do(t, http.MethodGet, "/customers", token, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp, err := srv.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "scope_filter_records_total")
	assert.Contains(t, string(raw), "http_requests_total")
	assert.NotEmpty(t, resp.Header.Get(observability.RequestIDHeader))
}
