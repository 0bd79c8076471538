package middleware

import (
	"net/http"
	"strings"

	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/repository"
	"github.com/josedavimartini-ship-it/publimicro-sub003/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthMiddleware struct {
	JWT      *utils.JWTManager
	Sessions repository.SessionRepository
}

// RequireAuth accepts a bearer access token only while its session is still
// active; logout revokes the session and cuts the token off before its TTL.
func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		token := extractBearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		claims, err := m.JWT.ParseAccessToken(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		sessionID, err := uuid.Parse(claims.SessionID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		if !m.sessionActive(c, sessionID) {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		SetAuthContext(c, userID, claims.Role, sessionID)
		return next(c)
	}
}

// OptionalAuth fills the auth context when a valid bearer token is present
// and otherwise lets the request through anonymously. Used where an
// endpoint answers differently for authenticated callers (authorization
// checks, listing visibility) without requiring a session.
func (m AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil {
			return next(c)
		}
		token := extractBearerToken(c.Request())
		if token == "" {
			return next(c)
		}
		claims, err := m.JWT.ParseAccessToken(token)
		if err != nil {
			return next(c)
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return next(c)
		}
		sessionID, err := uuid.Parse(claims.SessionID)
		if err != nil {
			return next(c)
		}
		if !m.sessionActive(c, sessionID) {
			return next(c)
		}
		SetAuthContext(c, userID, claims.Role, sessionID)
		return next(c)
	}
}

func (m AuthMiddleware) sessionActive(c echo.Context, sessionID uuid.UUID) bool {
	if m.Sessions == nil {
		return false
	}
	session, err := m.Sessions.FindActive(c.Request().Context(), sessionID)
	if err != nil {
		return false
	}
	return session != nil
}

func extractBearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if authorization == "" {
		return ""
	}
	parts := strings.SplitN(authorization, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
