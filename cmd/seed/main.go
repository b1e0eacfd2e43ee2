// Seeds the catalog with the initial wallpaper products. Development and
// testing only.
package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/MasonLiao319/wallpaperDepot/internal/config"
	"github.com/MasonLiao319/wallpaperDepot/internal/es"
	"github.com/MasonLiao319/wallpaperDepot/internal/models"
	"github.com/MasonLiao319/wallpaperDepot/internal/service/search"
)

func product(name, description, cost, filename string) models.Product {
	return models.Product{
		Name:        name,
		Description: description,
		Cost:        decimal.RequireFromString(cost),
		Filename:    filename,
	}
}

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	products := []models.Product{
		product("Morandi 1", "Beautiful minimal wallpaper 1", "2.99", "pic1.png"),
		product("Morandi 2", "Beautiful minimal wallpaper 2", "3.99", "pic2.png"),
		product("Morandi 3", "Beautiful minimal wallpaper 3", "4.99", "pic3.png"),
		product("Morandi 4", "Beautiful minimal wallpaper 4", "3.49", "pic4.png"),
		product("Morandi 5", "Beautiful minimal wallpaper 5", "5.29", "pic5.png"),
		product("Morandi 6", "Beautiful minimal wallpaper 6", "1.99", "pic6.png"),
		product("Morandi 7", "Beautiful minimal wallpaper 7", "2.99", "pic7.png"),
		product("Morandi 8", "Beautiful minimal wallpaper 8", "3.69", "pic8.png"),
		product("Morandi 9", "Beautiful minimal wallpaper 9", "3.99", "pic9.png"),
		product("Morandi 10", "Beautiful minimal wallpaper 10", "4.99", "pic10.png"),
		product("Pixel 11", "Beautiful minimal wallpaper 9", "3.99", "pic1.png"),
		product("Pixel 12", "Beautiful minimal wallpaper 10", "4.99", "pic12.png"),
	}

	for i := range products {
		if err := db.WithContext(ctx).Create(&products[i]).Error; err != nil {
			log.Fatalf("seed product %q: %v", products[i].Name, err)
		}
	}
	log.Printf("seeded %d products", len(products))

	if configuration.ES_URL == "" {
		return
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatalf("elasticsearch init error: %v", err)
	}
	for _, p := range products {
		if err := search.Index(ctx, esClient, es.ProductIndex, p); err != nil {
			log.Fatalf("index product %q: %v", p.Name, err)
		}
	}
	log.Printf("indexed %d products", len(products))
}
