package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"amora/amora/config"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func runMiddleware(cfg config.Config, authHeader string) (*httptest.ResponseRecorder, int, bool) {
	var gotUserID int
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest("POST", "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	AuthMiddleware(cfg)(next).ServeHTTP(rr, req)
	return rr, gotUserID, called
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	rr, userID, called := runMiddleware(cfg, "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !called {
		t.Fatal("next handler was not called")
	}
	if userID != 42 {
		t.Errorf("expected user id 42 in context, got %d", userID)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}

	expired := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signToken(t, "other-secret", jwt.MapClaims{
		"user_id": 42,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	noUserID := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed", "Bearer"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired", "Bearer " + expired},
		{"wrong key", "Bearer " + wrongKey},
		{"no user_id claim", "Bearer " + noUserID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr, _, called := runMiddleware(cfg, tc.header)
			if rr.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rr.Code)
			}
			if called {
				t.Error("next handler must not run")
			}
		})
	}
}
