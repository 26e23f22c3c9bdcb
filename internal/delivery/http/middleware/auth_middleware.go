package middleware

import (
	"context"
	"net/http"
	"strings"

	"hospital-admin-api/pkg/jwt"
	"hospital-admin-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	TokenIDKey contextKey = "token_id"
)

// TokenChecker reports whether an issued token is still allowed
type TokenChecker interface {
	Exists(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokens     TokenChecker
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokens TokenChecker, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
		log:        log,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, r, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, r, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, r, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, r, "Invalid token type")
			return
		}

		// Check if token exists in Redis (not revoked)
		exists, err := m.tokens.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.InternalServerError(w, r)
			return
		}
		if !exists {
			response.Unauthorized(w, r, "Token has been revoked")
			return
		}

		ctx := WithIdentity(r.Context(), claims.UserID, claims.TokenID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithIdentity attaches the authenticated operator to ctx
func WithIdentity(ctx context.Context, userID uint, tokenID string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	return context.WithValue(ctx, TokenIDKey, tokenID)
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
