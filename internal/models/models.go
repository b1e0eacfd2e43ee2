package models

import "github.com/shopspring/decimal"

type Customer struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	FirstName    string `gorm:"not null"                 json:"first_name"`
	LastName     string `gorm:"not null"                 json:"last_name"`
}

// Address is keyed by the owning customer id, one row per customer.
type Address struct {
	CustomerID uint   `gorm:"primaryKey"   json:"customer_id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null"                 json:"name"`
	Description string          `gorm:"not null"                 json:"description"`
	Cost        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"cost"`
	Filename    string          `json:"filename"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement"                      json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_user_product;not null"         json:"user_id"`
	ProductID uint `gorm:"uniqueIndex:idx_user_product;not null"         json:"product_id"`
	Quantity  uint `gorm:"default:1;check:quantity>0"                    json:"quantity"`
}

type Transaction struct {
	ID          uint              `gorm:"primaryKey;autoIncrement"    json:"id"`
	UserID      uint              `gorm:"index;not null"              json:"user_id"`
	TotalAmount decimal.Decimal   `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CreatedAt   int64             `gorm:"autoCreateTime"              json:"created_at"`
	Items       []TransactionItem `gorm:"foreignKey:TransactionID"    json:"items"`
}

type TransactionItem struct {
	ID            uint `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionID uint `gorm:"index;not null"           json:"transaction_id"`
	ProductID     uint `gorm:"not null"                 json:"product_id"`
}
