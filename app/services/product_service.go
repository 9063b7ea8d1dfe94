package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/repositories"
	"github.com/shashiranjanraj/backoffice/pkg/cache"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"gorm.io/gorm"
)

const (
	// listCacheKey holds the serialized full product list.
	listCacheKey = "products:all"
	// listCacheTTL bounds worst-case staleness of the cached list.
	listCacheTTL = 60 * time.Second
)

// ProductInput carries the five editable fields of a product. Create and
// Update both take the full set (updates are full replaces).
type ProductInput struct {
	Name        string
	Price       float64
	Description string
	Stock       uint
	Category    string
}

// ProductService owns catalog reads and writes, keeping the list cache
// consistent with every mutation.
type ProductService struct {
	repo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		repo: repositories.NewProductRepository(),
	}
}

// List returns all products, served from the cache when fresh and loaded
// through it otherwise. A cache fault degrades to the database.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	err := cache.Remember(listCacheKey, listCacheTTL, &products, func() error {
		loaded, err := s.repo.All()
		if err != nil {
			return fmt.Errorf("%w: list products: %v", apperr.ErrStore, err)
		}
		products = loaded
		return nil
	})
	return products, err
}

// Categories returns the deduplicated non-empty category values.
func (s *ProductService) Categories() ([]string, error) {
	categories, err := s.repo.Categories()
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", apperr.ErrStore, err)
	}
	return categories, nil
}

// Get looks up one product by id.
func (s *ProductService) Get(id uint) (models.Product, error) {
	product, err := s.repo.Find(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, apperr.ErrNotFound
		}
		return models.Product{}, fmt.Errorf("%w: find product %d: %v", apperr.ErrStore, id, err)
	}
	return product, nil
}

// Create persists a new product and invalidates the list cache.
func (s *ProductService) Create(in ProductInput) (models.Product, error) {
	product := models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		Stock:       in.Stock,
		Category:    in.Category,
	}

	if err := s.repo.Create(&product); err != nil {
		return models.Product{}, fmt.Errorf("%w: create product: %v", apperr.ErrStore, err)
	}

	s.invalidateList()
	return product, nil
}

// Update replaces the five editable fields of an existing product and
// invalidates the list cache.
func (s *ProductService) Update(id uint, in ProductInput) (models.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return models.Product{}, err
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Description = in.Description
	product.Stock = in.Stock
	product.Category = in.Category

	if err := s.repo.Update(&product); err != nil {
		return models.Product{}, fmt.Errorf("%w: update product %d: %v", apperr.ErrStore, id, err)
	}

	s.invalidateList()
	return product, nil
}

// Delete removes a product by id and invalidates the list cache.
func (s *ProductService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(&product); err != nil {
		return fmt.Errorf("%w: delete product %d: %v", apperr.ErrStore, id, err)
	}

	s.invalidateList()
	return nil
}

// invalidateList deletes the cached product list after a committed write.
// It is fire-and-forget: the response does not wait for the round-trip, so a
// concurrent read may briefly observe the stale list until the TTL expires.
func (s *ProductService) invalidateList() {
	go func() {
		if err := cache.Del(listCacheKey); err != nil {
			logger.Warn("cache: invalidate failed", "key", listCacheKey, "error", err)
		}
	}()
}
