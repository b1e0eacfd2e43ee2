package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	UserHandler    *UserHTTP
	CartHandler    *CartHTTP
	ProductHandler *ProductHTTP
	SearchHandler  *SearchHTTP
	Auth           *SessionAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	products := api.Group("/products")
	products.GET("/all", d.ProductHandler.GetProducts)
	if d.SearchHandler != nil {
		products.GET("/search", d.SearchHandler.Search)
	}
	products.GET("/:id", d.ProductHandler.GetProduct)

	users := api.Group("/users")
	users.POST("/signup", d.UserHandler.Signup)
	users.POST("/login", d.UserHandler.Login)
	users.POST("/logout", d.UserHandler.Logout)
	users.GET("/getsession", d.UserHandler.GetSession)

	authed := users.Group("", d.Auth.RequireSession)
	authed.PUT("/updateInfo", d.UserHandler.UpdateInfo)
	authed.GET("/basic", d.UserHandler.Basic)
	authed.GET("/orders", d.UserHandler.Orders)
	authed.GET("/cart", d.CartHandler.GetCart)
	authed.POST("/addToCart", d.CartHandler.AddToCart)
	authed.PUT("/cart/:id", d.CartHandler.UpdateCartItem)
	authed.DELETE("/cart/:id", d.CartHandler.RemoveCartItem)
	authed.POST("/purchase", d.CartHandler.Purchase)
}
