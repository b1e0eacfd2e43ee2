package service

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MasonLiao319/wallpaperDepot/internal/config"
	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	return &repo.GormRepo{DB: db}
}

func seedProduct(t *testing.T, r *repo.GormRepo, name, cost string) models.Product {
	t.Helper()

	p := models.Product{
		Name:        name,
		Description: "test wallpaper",
		Cost:        decimal.RequireFromString(cost),
		Filename:    "test.png",
	}
	require.NoError(t, r.DB.Create(&p).Error)
	return p
}

func seedCustomer(t *testing.T, svc *AccountService, email string) uint {
	t.Helper()

	_, err := svc.Signup(context.Background(), email, "password", "Test", "User")
	require.NoError(t, err)

	customer, err := svc.Repo.GetCustomerByEmail(context.Background(), email)
	require.NoError(t, err)
	return customer.ID
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []map[string]any
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event map[string]any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	e := map[string]any{"_topic": topic, "_key": key}
	for k, v := range event {
		e[k] = v
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) byType(typ string) []map[string]any {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []map[string]any
	for _, e := range p.events {
		if e["type"] == typ {
			out = append(out, e)
		}
	}
	return out
}
