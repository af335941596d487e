package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/models"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
	calls  int
}

func (s *stubVerifier) Verify(string) (auth.Claims, error) {
	s.calls++
	return s.claims, s.err
}

func identityEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.IdentityFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": claims.UserID, "role": claims.Role})
	})
}

func TestAuthorize(t *testing.T) {
	user := auth.Claims{UserID: 1, Username: "bob", Role: models.RoleUser}
	admin := auth.Claims{UserID: 2, Username: "root", Role: models.RoleAdmin}

	tests := []struct {
		name       string
		policy     auth.Policy
		header     string
		claims     auth.Claims
		verifyErr  error
		wantStatus int
		wantCode   string
		wantCalls  int
	}{
		{name: "public skips verification", policy: auth.Public(), wantStatus: http.StatusTeapot},
		{name: "no header", policy: auth.Authenticated(), wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "wrong scheme", policy: auth.Authenticated(), header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "empty bearer", policy: auth.Authenticated(), header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "invalid token", policy: auth.Authenticated(), header: "Bearer bad", verifyErr: auth.ErrInvalidToken, wantStatus: http.StatusForbidden, wantCode: "INVALID_TOKEN", wantCalls: 1},
		{name: "valid token", policy: auth.Authenticated(), header: "Bearer good", claims: user, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "lowercase scheme", policy: auth.Authenticated(), header: "bearer good", claims: user, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "role mismatch", policy: auth.RequireRole(models.RoleAdmin), header: "Bearer good", claims: user, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN", wantCalls: 1},
		{name: "role match", policy: auth.RequireRole(models.RoleAdmin), header: "Bearer good", claims: admin, wantStatus: http.StatusOK, wantCalls: 1},
		{name: "role route without token", policy: auth.RequireRole(models.RoleAdmin), wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "role route with invalid token", policy: auth.RequireRole(models.RoleAdmin), header: "Bearer bad", verifyErr: errors.New("boom"), wantStatus: http.StatusForbidden, wantCode: "INVALID_TOKEN", wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{claims: tt.claims, err: tt.verifyErr}
			handler := Authorize(verifier, tt.policy)(identityEcho(t))

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, verifier.calls)
			if tt.wantCode != "" {
				var body struct {
					Error string `json:"error"`
					Code  string `json:"code"`
				}
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantCode, body.Code)
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestAuthorize_ForbiddenMessagesDiffer(t *testing.T) {
	user := auth.Claims{UserID: 1, Username: "bob", Role: models.RoleUser}

	run := func(v TokenVerifier) string {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/movies/1", nil)
		req.Header.Set("Authorization", "Bearer x")
		Authorize(v, auth.RequireRole(models.RoleAdmin))(identityEcho(t)).ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		return rec.Body.String()
	}

	invalid := run(&stubVerifier{err: auth.ErrInvalidToken})
	wrongRole := run(&stubVerifier{claims: user})
	assert.Contains(t, invalid, "invalid or expired token")
	assert.Contains(t, wrongRole, "insufficient role")
}
