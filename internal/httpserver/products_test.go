package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProductsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products/all", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct("Morandi 1", "2.99")
	env.seedProduct("Morandi 2", "3.99")

	rec := env.do(http.MethodGet, "/api/products/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []struct {
		Name string `json:"name"`
		Cost string `json:"cost"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	require.Equal(t, "Morandi 1", products[0].Name)
	require.Equal(t, "2.99", products[0].Cost)
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(t)
	p := env.seedProduct("Morandi 1", "2.99")

	rec := env.do(http.MethodGet, fmt.Sprintf("/api/products/%d", p.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Morandi 1", got.Name)

	rec = env.do(http.MethodGet, "/api/products/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
