package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/MasonLiao319/wallpaperDepot/internal/logging"
	"github.com/MasonLiao319/wallpaperDepot/internal/service"
	"github.com/MasonLiao319/wallpaperDepot/internal/session"
)

type UserHTTP struct {
	Account  *service.AccountService
	Checkout *service.CheckoutService
	Sessions session.Store
	// Secure controls the session cookie's Secure flag; off in development.
	Secure bool
}

func (h *UserHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.signup")

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	email, err := h.Account.Signup(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return serviceError(c, l, "signup_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"user": email})
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	customer, err := h.Account.Login(ctx, req.Email, req.Password)
	if err != nil {
		return serviceError(c, l, "login_error", err)
	}

	// a fresh login invalidates any session the browser still holds
	if old, err := c.Cookie(SessionCookieName); err == nil {
		h.Sessions.Destroy(old.Value)
	}

	token := h.Sessions.Create(customer.ID, customer.Email)
	c.SetCookie(NewSessionCookie(token, h.Secure))

	return c.String(http.StatusOK, "Login successful")
}

func (h *UserHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.logout")

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || !h.Sessions.Destroy(cookie.Value) {
		l.Warn("logout_error", "status", 400, "reason", "no active session")
		return c.String(http.StatusBadRequest, "No active session to log out from")
	}

	c.SetCookie(ExpiredSessionCookie(h.Secure))
	l.Info("logout_successful")
	return c.String(http.StatusOK, "Logged out successfully")
}

// GetSession reports who the cookie currently resolves to; user is null for
// anonymous callers.
func (h *UserHTTP) GetSession(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}
	sess, ok := h.Sessions.Get(cookie.Value)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{"user": nil})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": echo.Map{
		"user_id": sess.UserID,
		"email":   sess.UserEmail,
	}})
}

func (h *UserHTTP) UpdateInfo(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.update_info")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req service.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		l.Warn("update_info_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	if err := h.Account.UpdateProfile(ctx, userID, req); err != nil {
		return serviceError(c, l, "update_info_error", err)
	}

	return c.String(http.StatusOK, "User information updated")
}

func (h *UserHTTP) Basic(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.basic")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.Account.GetProfile(ctx, userID)
	if err != nil {
		return serviceError(c, l, "basic_error", err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *UserHTTP) Orders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.orders")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := h.Checkout.ListOrders(ctx, userID)
	if err != nil {
		return serviceError(c, l, "orders_error", err)
	}

	return c.JSON(http.StatusOK, orders)
}
