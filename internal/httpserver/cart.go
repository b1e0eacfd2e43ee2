package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MasonLiao319/wallpaperDepot/internal/logging"
	"github.com/MasonLiao319/wallpaperDepot/internal/service"
)

type CartHTTP struct {
	Cart     *service.CartService
	Checkout *service.CheckoutService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	entries, err := h.Cart.GetCart(ctx, userID)
	if err != nil {
		return serviceError(c, l, "get_cart_error", err)
	}

	return c.JSON(http.StatusOK, entries)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductID uint `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.ProductID == 0 {
		l.Warn("add_to_cart_error", "status", 400, "reason", "product_id required")
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "product_id required"})
	}

	item, err := h.Cart.AddToCart(ctx, userID, req.ProductID)
	if err != nil {
		return serviceError(c, l, "add_to_cart_error", err)
	}

	l.Info("item added to cart", "itemID", item.ID, "quantity", item.Quantity)
	return c.JSON(http.StatusOK, item)
}

func (h *CartHTTP) UpdateCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid cart item id"})
	}

	var req struct {
		Quantity uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	if _, err := h.Cart.UpdateItem(ctx, userID, uint(itemID), req.Quantity); err != nil {
		return serviceError(c, l, "update_cart_error", err)
	}

	return c.String(http.StatusOK, "Cart item updated")
}

func (h *CartHTTP) RemoveCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "cart item not found"})
	}

	if err := h.Cart.RemoveItem(ctx, userID, uint(itemID)); err != nil {
		return serviceError(c, l, "remove_cart_error", err)
	}

	return c.String(http.StatusOK, "Cart item removed")
}

func (h *CartHTTP) Purchase(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.purchase")

	userID, err := UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		ProductIDs []uint `json:"product_ids"`
		service.Payment
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("purchase_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	total, err := h.Checkout.Purchase(ctx, userID, req.ProductIDs, req.Payment)
	if err != nil {
		return serviceError(c, l, "purchase_error", err)
	}

	return c.JSON(http.StatusOK, echo.Map{"totalCost": total})
}
