package seeders

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"gorm.io/gorm"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts five demo products across five distinct categories.
// It is a no-op when the table already has rows, so it is safe to re-run.
func SeedProducts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{Name: "Wireless Earbuds", Price: 10.99, Description: "Compact wireless earbuds with a charging case.", Stock: 50, Category: "Electronics"},
		{Name: "Cotton T-Shirt", Price: 20.99, Description: "Plain cotton t-shirt, machine washable.", Stock: 30, Category: "Clothing"},
		{Name: "Ceramic Planter", Price: 30.99, Description: "Glazed ceramic planter with a drainage hole.", Stock: 15, Category: "Home & Garden"},
		{Name: "Yoga Mat", Price: 40.99, Description: "Non-slip yoga mat, 6mm thick.", Stock: 20, Category: "Sports"},
		{Name: "Notebook Set", Price: 50.99, Description: "Set of three ruled notebooks, A5.", Stock: 100, Category: "Books"},
	}

	return db.Create(&products).Error
}
