package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/backoffice/app/apperr"
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/app/services"
	"github.com/shashiranjanraj/backoffice/pkg/logger"
	"github.com/shashiranjanraj/backoffice/pkg/response"
	"github.com/shashiranjanraj/backoffice/pkg/validate"
)

// Catalog is the product service surface the controller depends on.
type Catalog interface {
	List() ([]models.Product, error)
	Categories() ([]string, error)
	Get(id uint) (models.Product, error)
	Create(in services.ProductInput) (models.Product, error)
	Update(id uint, in services.ProductInput) (models.Product, error)
	Delete(id uint) error
}

// Suggester generates one copywriting suggestion for a product field.
type Suggester interface {
	Suggest(field, context string) (string, error)
}

type ProductController struct {
	catalog Catalog
	suggest Suggester
}

func NewProductController() *ProductController {
	return &ProductController{
		catalog: services.NewProductService(),
		suggest: services.NewSuggestService(),
	}
}

// ProductRequest is the create/update payload. All five fields are required;
// violations are collected and joined rather than reported one at a time.
type ProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"numeric,min=1"`
	Description string  `json:"description" validate:"required"`
	Stock       int     `json:"stock"       validate:"integer,min=1"`
	Category    string  `json:"category"    validate:"required"`
}

func (req ProductRequest) input() services.ProductInput {
	return services.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Stock:       uint(req.Stock),
		Category:    req.Category,
	}
}

// Index returns the full product list, served through the 60-second cache.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.List()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	response.Success(w, products)
}

// Categories returns the deduplicated category values across all rows.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.catalog.Categories()
	if err != nil {
		logger.WithCtx(r.Context()).Error("list categories", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	if categories == nil {
		categories = []string{}
	}
	response.Success(w, categories)
}

// Show returns one product by id.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := c.catalog.Get(id)
	if err != nil {
		c.writeCatalogError(w, r, err, "Error fetching product")
		return
	}

	response.Success(w, product)
}

// Store validates and creates a product; the list cache is invalidated
// asynchronously after the row is committed.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	req, ok := c.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := c.catalog.Create(req.input())
	if err != nil {
		c.writeCatalogError(w, r, err, "Error creating product")
		return
	}

	response.Created(w, product)
}

// Update validates and fully replaces the editable fields of a product.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	req, ok := c.decodeProduct(w, r)
	if !ok {
		return
	}

	product, err := c.catalog.Update(id, req.input())
	if err != nil {
		c.writeCatalogError(w, r, err, "Error updating product")
		return
	}

	response.Success(w, product)
}

// Destroy removes a product. Deleting a missing id is 404, never 204.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(r)
	if !ok {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := c.catalog.Delete(id); err != nil {
		c.writeCatalogError(w, r, err, "Error deleting product")
		return
	}

	response.NoContent(w)
}

// Suggest proxies a single copywriting request to the generation service.
func (c *ProductController) Suggest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field   string `json:"field"`
		Context string `json:"context"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	suggestion, err := c.suggest.Suggest(body.Field, body.Context)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			response.Error(w, http.StatusBadRequest, "Invalid field for suggestion")
			return
		}
		logger.WithCtx(r.Context()).Error("ai suggestion", "error", err)
		response.Error(w, http.StatusInternalServerError, "Error generating AI suggestion")
		return
	}

	response.Success(w, map[string]string{"suggestion": suggestion})
}

// decodeProduct parses and validates the create/update payload, writing the
// 400 response itself when the body is rejected.
func (c *ProductController) decodeProduct(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}

	if errs := validate.Struct(req); validate.HasErrors(errs) {
		response.Error(w, http.StatusBadRequest, validate.Join(errs))
		return req, false
	}

	return req, true
}

// writeCatalogError maps a service error to the wire contract: 404 for a
// missing row, 500 with a domain message otherwise. The cause is logged, not
// echoed.
func (c *ProductController) writeCatalogError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if errors.Is(err, apperr.ErrNotFound) {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	logger.WithCtx(r.Context()).Error("catalog", "error", err)
	response.Error(w, http.StatusInternalServerError, message)
}

// productID resolves the {id} route parameter; a non-numeric id is treated
// the same as a missing row.
func productID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
