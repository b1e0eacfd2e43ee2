package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MasonLiao319/wallpaperDepot/internal/models"
)

var ErrCustomerExists = errors.New("customer already exists")

// CreateCustomerIfNotExists inserts the customer unless a row with the same
// email is already present. The existing row is left untouched.
func (r *GormRepo) CreateCustomerIfNotExists(ctx context.Context, c *models.Customer) error {
	tx := r.DB.WithContext(ctx).Where("email = ?", c.Email).FirstOrCreate(c)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrCustomerExists
	}
	return nil
}

func (r *GormRepo) GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormRepo) GetAddress(ctx context.Context, customerID uint) (*models.Address, error) {
	var a models.Address
	if err := r.DB.WithContext(ctx).Where("customer_id = ?", customerID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateProfile updates the customer's name fields and upserts the one
// address row keyed by the customer id, in a single transaction.
func (r *GormRepo) UpdateProfile(ctx context.Context, customerID uint, firstName, lastName string, addr *models.Address) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Customer{}).
			Where("id = ?", customerID).
			Updates(map[string]any{"first_name": firstName, "last_name": lastName})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		addr.CustomerID = customerID
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			UpdateAll: true,
		}).Create(addr).Error
	})
}
