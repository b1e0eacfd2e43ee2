package repo

import (
	"context"

	"github.com/MasonLiao319/wallpaperDepot/internal/models"
)

// CreateTransaction persists the transaction together with its item rows in
// one insert; gorm writes the association in the same statement batch.
func (r *GormRepo) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) ListTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}
