package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MasonLiao319/wallpaperDepot/internal/config"
	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
	"github.com/MasonLiao319/wallpaperDepot/internal/service"
	"github.com/MasonLiao319/wallpaperDepot/internal/session"
)

type testEnv struct {
	T        *testing.T
	E        *echo.Echo
	Repo     *repo.GormRepo
	Sessions *session.MemoryStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	r := &repo.GormRepo{DB: db}
	sessions := session.NewMemoryStore(session.DefaultTTL)
	t.Cleanup(sessions.Close)

	accountSvc := &service.AccountService{Repo: r}
	checkoutSvc := &service.CheckoutService{Repo: r}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	Register(e, &Deps{
		UserHandler: &UserHTTP{
			Account:  accountSvc,
			Checkout: checkoutSvc,
			Sessions: sessions,
		},
		CartHandler: &CartHTTP{
			Cart:     &service.CartService{Repo: r},
			Checkout: checkoutSvc,
		},
		ProductHandler: &ProductHTTP{Catalog: &service.CatalogService{Repo: r}},
		Auth:           &SessionAuth{Sessions: sessions},
	})

	return &testEnv{T: t, E: e, Repo: r, Sessions: sessions}
}

func (env *testEnv) do(method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) seedProduct(name, cost string) models.Product {
	env.T.Helper()

	p := models.Product{
		Name:        name,
		Description: "test wallpaper",
		Cost:        decimal.RequireFromString(cost),
		Filename:    "test.png",
	}
	require.NoError(env.T, env.Repo.DB.Create(&p).Error)
	return p
}

func (env *testEnv) signup(email string) {
	env.T.Helper()

	rec := env.do(http.MethodPost, "/api/users/signup", map[string]string{
		"email":      email,
		"password":   "password",
		"first_name": "Test",
		"last_name":  "User",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)
}

// login signs the user up if needed and returns the session cookie.
func (env *testEnv) login(email string) *http.Cookie {
	env.T.Helper()

	env.signup(email)
	rec := env.do(http.MethodPost, "/api/users/login", map[string]string{
		"email":    email,
		"password": "password",
	})
	require.Equal(env.T, http.StatusOK, rec.Code)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName && ck.Value != "" {
			return ck
		}
	}
	env.T.Fatal("no session cookie set on login")
	return nil
}
