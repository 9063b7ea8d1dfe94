package repositories

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/orm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// All returns every product, unordered.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	err := orm.DB().Model(&models.Product{}).Get(&products)
	return products, err
}

// Categories returns the distinct non-empty category values across all rows.
func (r *ProductRepository) Categories() ([]string, error) {
	var categories []string
	err := orm.DB().
		Model(&models.Product{}).
		Where("category <> ''").
		Distinct().
		Pluck("category", &categories)
	return categories, err
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := orm.DB().Model(&models.Product{}).Where("id = ?", id).First(&product)
	return product, err
}

// Create persists a new product, assigning its id and timestamps.
func (r *ProductRepository) Create(product *models.Product) error {
	return orm.DB().Create(product)
}

// Update persists all fields of an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return orm.DB().Save(product)
}

// Delete removes a product by primary key.
func (r *ProductRepository) Delete(product *models.Product) error {
	return orm.DB().Delete(product)
}
