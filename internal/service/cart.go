package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
)

type CartService struct {
	Repo *repo.GormRepo
}

// CartEntry is a cart line joined with its product detail.
type CartEntry struct {
	Item    models.CartItem `json:"item"`
	Product models.Product  `json:"product"`
}

// GetCart returns the user's cart lines joined with product detail, in
// insertion order. An empty cart is ErrNotFound.
func (s *CartService) GetCart(ctx context.Context, userID uint) ([]CartEntry, error) {
	items, err := s.Repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrNotFound)
	}

	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Repo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entries := make([]CartEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, CartEntry{Item: it, Product: byID[it.ProductID]})
	}
	return entries, nil
}

// AddToCart adds one unit of the product to the user's cart. Repeat calls
// accumulate quantity; this is intentionally not idempotent.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint) (*models.CartItem, error) {
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return s.Repo.AddToCart(ctx, userID, productID)
}

// UpdateItem overwrites the quantity of a cart item owned by userID.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity uint) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	item, err := s.Repo.SetCartItemQuantity(ctx, userID, itemID, quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart item not found", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a cart item owned by userID. Items owned by other
// users look like missing rows.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	if err := s.Repo.DeleteCartItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cart item not found", ErrNotFound)
		}
		return err
	}
	return nil
}
