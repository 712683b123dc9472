package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}

// AuthMiddleware guards mutating routes with a bearer token issued by the
// authenticate endpoint.
type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

func (m *AuthMiddleware) Authorize(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			m.unauthorized(w, "missing bearer token")
			return
		}

		if _, err := m.validator.Validate(token); err != nil {
			m.logs.Warnw("rejected request with invalid token", "error", err, "path", r.URL.Path)
			m.unauthorized(w, "invalid token")
			return
		}

		next(w, r)
	}
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": detail})
}
