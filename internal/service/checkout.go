package service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/MasonLiao319/wallpaperDepot/internal/logging"
	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
)

// Payment carries card details for format validation only. Nothing is ever
// charged and nothing here is persisted.
type Payment struct {
	CardNumber     string `json:"card_number"`
	CardholderName string `json:"cardholder_name"`
	CVV            string `json:"cvv"`
	ExpiryDate     string `json:"expiry_date"`
}

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	holderNameRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	cvvRe        = regexp.MustCompile(`^\d{3}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

type CheckoutService struct {
	Repo   *repo.GormRepo
	Events Publisher
}

// Purchase validates payment format, sums the cost of every resolvable
// product id (duplicates each count again) and records one transaction.
// The cart is left untouched.
func (s *CheckoutService) Purchase(ctx context.Context, userID uint, productIDs []uint, payment Payment) (string, error) {
	l := logging.FromContext(ctx).With("svc", "checkout.purchase", "userID", userID)

	if len(productIDs) == 0 {
		return "", fmt.Errorf("%w: no products to purchase", ErrValidation)
	}
	if err := validatePayment(payment); err != nil {
		return "", err
	}

	products, err := s.Repo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return "", err
	}
	if len(products) == 0 {
		return "", fmt.Errorf("%w: no products found", ErrNotFound)
	}

	costByID := make(map[uint]decimal.Decimal, len(products))
	for _, p := range products {
		costByID[p.ID] = p.Cost
	}

	total := decimal.Zero
	items := make([]models.TransactionItem, 0, len(productIDs))
	for _, id := range productIDs {
		cost, ok := costByID[id]
		if !ok {
			continue
		}
		total = total.Add(cost)
		items = append(items, models.TransactionItem{ProductID: id})
	}

	tx := models.Transaction{
		UserID:      userID,
		TotalAmount: total.Round(2),
		Items:       items,
	}
	if err := s.Repo.CreateTransaction(ctx, &tx); err != nil {
		return "", err
	}

	if s.Events != nil {
		event := map[string]any{
			"type":          "order_created",
			"transactionID": tx.ID,
			"userID":        userID,
			"total":         tx.TotalAmount.StringFixed(2),
		}
		if err := s.Events.PublishEvent(ctx, TopicOrderEvents, fmt.Sprint(userID), event); err != nil {
			l.Error("event publish error", "topic", TopicOrderEvents, "error", err)
		}
	}

	l.Info("purchase recorded", "transactionID", tx.ID, "total", tx.TotalAmount.StringFixed(2))
	return tx.TotalAmount.StringFixed(2), nil
}

// ListOrders returns the user's transactions, newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, userID uint) ([]models.Transaction, error) {
	txs, err := s.Repo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("%w: no orders found", ErrNotFound)
	}
	return txs, nil
}

func validatePayment(p Payment) error {
	if p.CardNumber == "" || p.CardholderName == "" || p.CVV == "" || p.ExpiryDate == "" {
		return fmt.Errorf("%w: missing payment fields", ErrValidation)
	}
	switch {
	case !cardNumberRe.MatchString(p.CardNumber):
		return fmt.Errorf("%w: card number must be 16 digits", ErrValidation)
	case !holderNameRe.MatchString(p.CardholderName):
		return fmt.Errorf("%w: cardholder name must contain only letters", ErrValidation)
	case !cvvRe.MatchString(p.CVV):
		return fmt.Errorf("%w: cvv must be 3 digits", ErrValidation)
	case !expiryRe.MatchString(p.ExpiryDate):
		return fmt.Errorf("%w: expiry date must be MM/YY", ErrValidation)
	}
	return nil
}
