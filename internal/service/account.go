package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MasonLiao319/wallpaperDepot/internal/hash"
	"github.com/MasonLiao319/wallpaperDepot/internal/logging"
	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AccountService struct {
	Repo   *repo.GormRepo
	Events Publisher
}

type Profile struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Address   *models.Address `json:"address"`
}

type ProfileUpdate struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// Signup creates a customer with a hashed password and returns the email,
// never the hash.
func (s *AccountService) Signup(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "account.signup")

	if email == "" || password == "" || firstName == "" || lastName == "" {
		return "", fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_error", "reason", "cannot hash the password", "error", err)
		return "", err
	}

	customer := models.Customer{
		Email:        email,
		PasswordHash: pwHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := s.Repo.CreateCustomerIfNotExists(ctx, &customer); err != nil {
		if errors.Is(err, repo.ErrCustomerExists) {
			return "", fmt.Errorf("%w: user already exists", ErrConflict)
		}
		return "", err
	}

	s.publish(ctx, TopicUserEvents, customer.ID, map[string]any{
		"type":   "user_registered",
		"userID": customer.ID,
		"email":  customer.Email,
	})

	return customer.Email, nil
}

// Login verifies credentials and returns the matching customer.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Customer, error) {
	l := logging.FromContext(ctx).With("svc", "account.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}

	customer, err := s.Repo.GetCustomerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	if !hash.CheckPassword(customer.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	s.publish(ctx, TopicUserEvents, customer.ID, map[string]any{
		"type":   "user_logged_in",
		"userID": customer.ID,
		"email":  customer.Email,
	})
	l.Info("login_successful", "userID", customer.ID)

	return customer, nil
}

func (s *AccountService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	customer, err := s.Repo.GetCustomerByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}

	profile := &Profile{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
	}

	addr, err := s.Repo.GetAddress(ctx, userID)
	switch {
	case err == nil:
		profile.Address = addr
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no address on file yet
	default:
		return nil, err
	}

	return profile, nil
}

// UpdateProfile overwrites the customer's name fields and replaces the
// address row keyed by the customer id.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) error {
	addr := models.Address{
		Street:     upd.Street,
		City:       upd.City,
		Province:   upd.Province,
		Country:    upd.Country,
		PostalCode: upd.PostalCode,
	}
	if err := s.Repo.UpdateProfile(ctx, userID, upd.FirstName, upd.LastName, &addr); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *AccountService) publish(ctx context.Context, topic string, userID uint, event map[string]any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.PublishEvent(ctx, topic, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("event publish error", "topic", topic, "error", err)
	}
}
