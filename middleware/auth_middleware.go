package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blog-backend/config"
	"blog-backend/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid token")
	errInvalidClaims = errors.New("invalid claims")
	errTokenScope    = errors.New("invalid token issuer or audience")
)

// UserClaims are the JWT claims issued to platform users. Subject holds
// the user id.
type UserClaims struct {
	Username string `json:"username"`
	Sid      string `json:"sid"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates user bearer tokens and attaches the
// resulting user context to the request.
type AuthMiddleware struct {
	logger   *slog.Logger
	secret   []byte
	issuer   string
	audience string
}

func NewAuthMiddleware(logger *slog.Logger, cfg *config.Config) *AuthMiddleware {
	secret := []byte(cfg.Auth.TokenSecret)
	if len(secret) == 0 && logger != nil {
		logger.Warn("AUTH_TOKEN_SECRET not set, authenticated endpoints will deny all requests")
	}

	return &AuthMiddleware{
		logger:   logger,
		secret:   secret,
		issuer:   cfg.Auth.TokenIssuer,
		audience: cfg.Auth.TokenAudience,
	}
}

// RequireAuth rejects requests without a valid bearer token.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.validateToken(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				case errors.Is(err, errTokenScope):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer or audience")
				default:
					if m.logger != nil {
						m.logger.Error("token validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func (m *AuthMiddleware) validateToken(c echo.Context) (*domain.UserContext, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, errMissingToken
	}

	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("token secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*UserClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	if claims.Issuer != m.issuer {
		return nil, errTokenScope
	}
	audienceMatch := false
	for _, aud := range claims.Audience {
		if aud == m.audience {
			audienceMatch = true
			break
		}
	}
	if !audienceMatch {
		return nil, errTokenScope
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject is not a uuid", errInvalidClaims)
	}

	user := &domain.UserContext{
		UserID:    userID,
		Username:  claims.Username,
		SessionID: claims.Sid,
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Time
	}

	return user, nil
}

// GetUserContext extracts the authenticated user from the echo context.
func GetUserContext(c echo.Context) (*domain.UserContext, error) {
	return domain.GetUserFromContext(c.Request().Context())
}
