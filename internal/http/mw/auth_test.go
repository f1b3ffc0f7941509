package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestVerifyToken(t *testing.T) {
	v := NewVerifier(testSecret)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user_1",
		"email": "a@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestVerifyTokenRejections(t *testing.T) {
	v := NewVerifier(testSecret)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", jwt.MapClaims{"sub": "user_1"})},
		{"missing sub", signToken(t, testSecret, jwt.MapClaims{"email": "a@example.com"})},
		{"expired", signToken(t, testSecret, jwt.MapClaims{
			"sub": "user_1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := v.VerifyToken(tt.token); err == nil {
				t.Error("VerifyToken() accepted an invalid token")
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	v := NewVerifier(testSecret)
	handler := Auth(v)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserClaims(r.Context())
		if claims == nil || claims.UserID != "user_1" {
			t.Error("claims missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user_1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("bad token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}
