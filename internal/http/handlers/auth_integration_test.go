package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"github.com/hongminglow/movies-be/internal/auth"
	"github.com/hongminglow/movies-be/internal/config"
	"github.com/hongminglow/movies-be/internal/http/handlers"
	"github.com/hongminglow/movies-be/internal/models"
	"github.com/hongminglow/movies-be/internal/models/dto"
	"github.com/hongminglow/movies-be/internal/server"
	"github.com/hongminglow/movies-be/internal/storage/postgres"
)

// TestAuthIntegration exercises register, login and profile against a live database.
func TestAuthIntegration(t *testing.T) {
	if os.Getenv("RUN_AUTH_INTEGRATION") != "true" {
		t.Skip("set RUN_AUTH_INTEGRATION=true to run this integration test")
	}

	loadDotEnv()
	dbURL := mustGetEnv(t, "DATABASE_URL")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := postgres.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	defer store.Close()

	tokens, err := auth.NewTokenManager(mustGetEnv(t, "JWT_SECRET"), "movies-be")
	if err != nil {
		t.Fatalf("init tokens: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := auth.NewService(store, auth.NewHasher(4), tokens, logger)

	router := server.NewRouter(config.Config{}, tokens, nil, logger, handlers.NewAuthHandler(service, false))
	ts := httptest.NewServer(router)
	defer ts.Close()

	username := fmt.Sprintf("apitest_%d", time.Now().UnixNano())
	password := fmt.Sprintf("Pass!%d", time.Now().UnixNano())

	registered := requestRegister(t, ts.URL, username, password)
	if registered.Username != username || registered.UserID <= 0 {
		t.Fatalf("register mismatch: got %+v", registered)
	}

	token := requestLogin(t, ts.URL, strings.ToUpper(username), password)

	profile := requestProfile(t, ts.URL, token)
	want := models.Profile{ID: registered.UserID, Username: username, Role: models.RoleUser}
	if profile != want {
		t.Fatalf("profile = %+v, want %+v", profile, want)
	}

	t.Logf("created user %s (id=%d) and fetched its profile", username, registered.UserID)
}

func requestRegister(t *testing.T, baseURL, username, password string) dto.RegisterResponse {
	t.Helper()
	var out dto.RegisterResponse
	doJSON(t, http.MethodPost, baseURL+"/auth/register", "", dto.Credentials{Username: username, Password: password}, http.StatusCreated, &out)
	return out
}

func requestLogin(t *testing.T, baseURL, username, password string) string {
	t.Helper()
	var out dto.LoginResponse
	doJSON(t, http.MethodPost, baseURL+"/auth/login", "", dto.Credentials{Username: username, Password: password}, http.StatusOK, &out)
	if strings.TrimSpace(out.Token) == "" {
		t.Fatal("login response missing token")
	}
	return out.Token
}

func requestProfile(t *testing.T, baseURL, token string) models.Profile {
	t.Helper()
	var out models.Profile
	doJSON(t, http.MethodGet, baseURL+"/profile", token, nil, http.StatusOK, &out)
	return out
}

func doJSON(t *testing.T, method, url, token string, payload any, wantStatus int, out any) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s status = %d, want %d", method, url, resp.StatusCode, wantStatus)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func mustGetEnv(t *testing.T, key string) string {
	t.Helper()
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		t.Fatalf("%s is required", key)
	}
	return val
}

func loadDotEnv() {
	for _, path := range []string{".env", "../.env", "../../.env", "../../../.env"} {
		_ = godotenv.Overload(path)
	}
}
