package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telswitch/isdnc/internal/crypto"
)

const testSecret = "test-secret"

// guardedHandler records whether the guard let the request through and what
// user ID was attached.
func guardedHandler(t *testing.T, called *bool, wantUserID int64) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, wantUserID, id)
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthBearerToken(t *testing.T) {
	token, err := crypto.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	var called bool
	handler := SessionAuth(testSecret)(guardedHandler(t, &called, 42))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dnc/lookup", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuthCookieFallback(t *testing.T) {
	token, err := crypto.GenerateToken(7, testSecret, time.Hour)
	require.NoError(t, err)

	var called bool
	handler := SessionAuth(testSecret)(guardedHandler(t, &called, 7))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dnc/history", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestSessionAuthRefusals(t *testing.T) {
	valid, err := crypto.GenerateToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := crypto.GenerateToken(42, testSecret, -time.Minute)
	require.NoError(t, err)

	tampered := []byte(valid)
	tampered[len(tampered)-1] ^= 0x01

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") }},
		{"empty bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer ") }},
		{"tampered token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+string(tampered)) }},
		{"expired token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) }},
		{"garbage cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := SessionAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/dnc/lookup", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.False(t, called, "guard must refuse before any further work")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestUserIDFromContextAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := UserIDFromContext(req.Context())
	assert.False(t, ok)
}
