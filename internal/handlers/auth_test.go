package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TRAVELPLANNER_BACK-END/internal/config"
	"TRAVELPLANNER_BACK-END/internal/dto"
	"TRAVELPLANNER_BACK-END/internal/store"
	"TRAVELPLANNER_BACK-END/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour},
		Planner: config.PlannerConfig{
			NumItineraries: 3,
			ConnectTimeout: time.Second,
		},
	}
}

func authedContext(ctx context.Context, userID uuid.UUID, email string) context.Context {
	ctx = context.WithValue(ctx, utils.ContextKeyUserID, userID)
	return context.WithValue(ctx, utils.ContextKeyEmail, email)
}

func registerTestUser(t *testing.T, h *AuthHandler) dto.AuthResponse {
	t.Helper()

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRegister(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())

	resp := registerTestUser(t, h)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "{}", resp.User.Preferences)
	_, err := uuid.Parse(resp.User.ID)
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())
	registerTestUser(t, h)

	body := `{"name":"Alice Again","email":"alice@example.com","password":"other456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@b.com"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())
	registerTestUser(t, h)

	t.Run("correct credentials", func(t *testing.T) {
		body := `{"email":"alice@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"alice@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		body := `{"email":"bob@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetProfile(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())
	registered := registerTestUser(t, h)
	userID := uuid.MustParse(registered.User.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req = req.WithContext(authedContext(req.Context(), userID, "alice@example.com"))
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestGetProfileUnauthenticated(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdatePreferences(t *testing.T) {
	h := NewAuthHandler(store.NewMemory(), testConfig())
	registered := registerTestUser(t, h)
	userID := uuid.MustParse(registered.User.ID)

	body := `{"preferences":{"travel_style":["Food","Cultural"],"budget_band":"mid"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/auth/preferences", strings.NewReader(body))
	req = req.WithContext(authedContext(req.Context(), userID, "alice@example.com"))
	rec := httptest.NewRecorder()
	h.UpdatePreferences(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Preferences, "travel_style")
	assert.Contains(t, resp.Preferences, "Cultural")
}
