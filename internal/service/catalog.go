package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) GetProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.Repo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no wallpapers found", ErrNotFound)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wallpaper not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}
