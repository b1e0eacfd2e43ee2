package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MasonLiao319/wallpaperDepot/internal/session"
)

const (
	ctxUserID    = "user_id"
	ctxUserEmail = "user_email"
)

// SessionAuth resolves the session cookie to an authenticated identity and
// stores it in the echo context. Requests without a valid session get 401.
type SessionAuth struct {
	Sessions session.Store
}

func (m *SessionAuth) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		sess, ok := m.Sessions.Get(cookie.Value)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
		}
		c.Set(ctxUserID, sess.UserID)
		c.Set(ctxUserEmail, sess.UserEmail)
		return next(c)
	}
}

// UserID reads the authenticated user id set by RequireSession.
func UserID(c echo.Context) (uint, error) {
	v := c.Get(ctxUserID)
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}
