package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"globex-logistics/internal/features/auth/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSessionService tracks sessions in memory.
type mockSessionService struct {
	password string
	sessions map[string]bool
}

func newMockSessionService(password string) *mockSessionService {
	return &mockSessionService{
		password: password,
		sessions: make(map[string]bool),
	}
}

func (m *mockSessionService) Login(_ context.Context, password string) (string, error) {
	if password != m.password {
		return "", service.ErrInvalidPassword
	}
	token := "session-token"
	m.sessions[token] = true
	return token, nil
}

func (m *mockSessionService) Logout(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionService) Validate(_ context.Context, token string) bool {
	return m.sessions[token]
}

func newAuthTestApp(sessions *mockSessionService) *fiber.App {
	app := fiber.New()

	h := NewAuthHandler(sessions)
	app.Post("/admin/login", h.Login)
	app.Post("/admin/logout", h.Logout)

	guarded := app.Group("/admin", RequireSession(sessions))
	guarded.Get("/shipments", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	return app
}

func loginRequest(password string) *http.Request {
	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin_Success(t *testing.T) {
	app := newAuthTestApp(newMockSessionService("hunter2"))

	resp, err := app.Test(loginRequest("hunter2"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["token"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newAuthTestApp(newMockSessionService("hunter2"))

	resp, err := app.Test(loginRequest("letmein"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_EmptyPassword(t *testing.T) {
	app := newAuthTestApp(newMockSessionService("hunter2"))

	resp, err := app.Test(loginRequest(""))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequireSession(t *testing.T) {
	sessions := newMockSessionService("hunter2")
	app := newAuthTestApp(sessions)

	t.Run("rejects requests without a token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/shipments", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/shipments", nil)
		req.Header.Set(TokenHeader, "bogus")
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("lets live sessions through", func(t *testing.T) {
		token, err := sessions.Login(context.Background(), "hunter2")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/shipments", nil)
		req.Header.Set(TokenHeader, token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLogout_InvalidatesSession(t *testing.T) {
	sessions := newMockSessionService("hunter2")
	app := newAuthTestApp(sessions)

	token, err := sessions.Login(context.Background(), "hunter2")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set(TokenHeader, token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, sessions.Validate(context.Background(), token))
}

func TestLogout_WithoutToken(t *testing.T) {
	app := newAuthTestApp(newMockSessionService("hunter2"))

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
