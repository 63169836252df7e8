package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONRequest(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Alice"}`))
		rec := httptest.NewRecorder()

		var p payload
		require.NoError(t, DecodeJSONRequest(rec, req, &p))
		assert.Equal(t, "Alice", p.Name)
	})

	t.Run("invalid body writes 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not json"))
		rec := httptest.NewRecorder()

		var p payload
		require.Error(t, DecodeJSONRequest(rec, req, &p))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request body")
	})
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		got, err := ParseDate("2025-06-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseDate("2025-06-01T10:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := ParseDate("06/01/2025")
		require.Error(t, err)
	})
}

func TestContextAccessors(t *testing.T) {
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
	_, ok = GetEmailFromContext(ctx)
	assert.False(t, ok)
}
