package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// TokenVerifier validates a bearer token and returns the admin user id it was
// issued for. Implemented by the auth service.
type TokenVerifier interface {
	VerifyToken(token string) (uint, error)
}

type JWTAuth struct {
	verifier TokenVerifier
}

type contextKey int

const adminIDKey contextKey = iota

func NewJWTAuth(verifier TokenVerifier) *JWTAuth {
	return &JWTAuth{verifier: verifier}
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		adminID, err := a.verifier.VerifyToken(token)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := WithAdminID(r.Context(), adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    "invalid_token",
			"message": "invalid token",
		},
	})
}

func WithAdminID(ctx context.Context, adminID uint) context.Context {
	return context.WithValue(ctx, adminIDKey, adminID)
}

func AdminIDFromContext(ctx context.Context) (uint, bool) {
	adminID, ok := ctx.Value(adminIDKey).(uint)
	if !ok || adminID == 0 {
		return 0, false
	}
	return adminID, true
}
