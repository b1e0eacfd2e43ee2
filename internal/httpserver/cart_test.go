package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MasonLiao319/wallpaperDepot/internal/models"
)

func validPurchaseBody(productIDs ...uint) map[string]any {
	return map[string]any{
		"product_ids":     productIDs,
		"card_number":     "4111111111111111",
		"cardholder_name": "Alice Ng",
		"cvv":             "123",
		"expiry_date":     "12/27",
	}
}

func TestCartRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/users/cart"},
		{http.MethodPost, "/api/users/addToCart"},
		{http.MethodPut, "/api/users/cart/1"},
		{http.MethodDelete, "/api/users/cart/1"},
		{http.MethodPost, "/api/users/purchase"},
	} {
		rec := env.do(tc.method, tc.path, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestAddToCartHandler(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")
	p := env.seedProduct("Morandi 1", "2.99")

	rec := env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": p.ID}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.Equal(t, p.ID, item.ProductID)
	require.EqualValues(t, 1, item.Quantity)

	// repeat add increments the same row
	rec = env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": p.ID}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	require.EqualValues(t, 2, item.Quantity)

	rec = env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": 999}, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCartHandler(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")

	rec := env.do(http.MethodGet, "/api/users/cart", nil, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)

	p := env.seedProduct("Morandi 1", "2.99")
	rec = env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": p.ID}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/api/users/cart", nil, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []struct {
		Item    models.CartItem `json:"item"`
		Product struct {
			Name string `json:"name"`
		} `json:"product"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "Morandi 1", entries[0].Product.Name)
}

func TestUpdateCartItemHandler(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")
	p := env.seedProduct("Morandi 1", "2.99")

	rec := env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": p.ID}, ck)
	require.Equal(t, http.StatusOK, rec.Code)
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	path := fmt.Sprintf("/api/users/cart/%d", item.ID)

	rec = env.do(http.MethodPut, path, map[string]uint{"quantity": 5}, ck)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodPut, path, map[string]uint{"quantity": 0}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, path, map[string]uint{}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPut, "/api/users/cart/999", map[string]uint{"quantity": 2}, ck)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPut, "/api/users/cart/abc", map[string]uint{"quantity": 2}, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var row models.CartItem
	require.NoError(t, env.Repo.DB.First(&row, item.ID).Error)
	require.EqualValues(t, 5, row.Quantity)
}

func TestCartOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)

	// two users authenticated concurrently with distinct sessions
	ckAlice := env.login("alice@example.com")
	ckBob := env.login("bob@example.com")

	p := env.seedProduct("Morandi 1", "2.99")

	rec := env.do(http.MethodPost, "/api/users/addToCart", map[string]uint{"product_id": p.ID}, ckAlice)
	require.Equal(t, http.StatusOK, rec.Code)
	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	path := fmt.Sprintf("/api/users/cart/%d", item.ID)

	rec = env.do(http.MethodDelete, path, nil, ckBob)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodPut, path, map[string]uint{"quantity": 9}, ckBob)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// alice's row is untouched and still hers to delete
	var row models.CartItem
	require.NoError(t, env.Repo.DB.First(&row, item.ID).Error)
	require.EqualValues(t, 1, row.Quantity)

	rec = env.do(http.MethodDelete, path, nil, ckAlice)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPurchaseHandler(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")

	p1 := env.seedProduct("Morandi 1", "2.99")
	p2 := env.seedProduct("Morandi 2", "3.99")

	rec := env.do(http.MethodPost, "/api/users/purchase", validPurchaseBody(p1.ID, p2.ID), ck)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "6.98", resp["totalCost"])
}

func TestPurchaseHandlerBadPayment(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")
	p := env.seedProduct("Morandi 1", "2.99")

	body := validPurchaseBody(p.ID)
	body["card_number"] = "1234"
	rec := env.do(http.MethodPost, "/api/users/purchase", body, ck)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var count int64
	require.NoError(t, env.Repo.DB.Model(&models.Transaction{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestPurchaseHandlerNothingResolves(t *testing.T) {
	env := newTestEnv(t)
	ck := env.login("alice@example.com")

	rec := env.do(http.MethodPost, "/api/users/purchase", validPurchaseBody(998, 999), ck)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
