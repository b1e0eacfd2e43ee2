package httpserver

import (
	"net/http"

	"github.com/MasonLiao319/wallpaperDepot/internal/session"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// NewSessionCookie builds the session cookie. Secure is off only in
// development deployments.
func NewSessionCookie(token string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(session.DefaultTTL.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func ExpiredSessionCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
