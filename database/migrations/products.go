package migrations

import (
	"time"

	"github.com/shashiranjanraj/backoffice/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20250722000000_create_products_table", &CreateProductsTable{})
	migration.Register("20250722201302_alter_description_to_text", &AlterDescriptionToText{})
	migration.Register("20250723043102_add_stock_to_products", &AddStockToProducts{})
	migration.Register("20250723043254_add_category_to_products", &AddCategoryToProducts{})
}

// The structs below stage the products table's column history so each
// migration alters exactly the shape that existed at its point in time.

type productsV1 struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"size:255;not null"`
	Price       float64 `gorm:"not null"`
	Description string  `gorm:"size:255;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productsV1) TableName() string { return "products" }

type productsDescriptionText struct {
	Description string `gorm:"type:text;not null"`
}

func (productsDescriptionText) TableName() string { return "products" }

type productsDescriptionString struct {
	Description string `gorm:"size:255;not null"`
}

func (productsDescriptionString) TableName() string { return "products" }

type productsStock struct {
	Stock uint `gorm:"not null;default:0"`
}

func (productsStock) TableName() string { return "products" }

type productsCategory struct {
	Category string `gorm:"size:255;not null;default:Uncategorized"`
}

func (productsCategory) TableName() string { return "products" }

// -------- 0001: create products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.Migrator().CreateTable(&productsV1{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: widen description --------

type AlterDescriptionToText struct{}

func (m *AlterDescriptionToText) Up(db *gorm.DB) error {
	return db.Migrator().AlterColumn(&productsDescriptionText{}, "Description")
}

func (m *AlterDescriptionToText) Down(db *gorm.DB) error {
	return db.Migrator().AlterColumn(&productsDescriptionString{}, "Description")
}

// -------- 0003: stock column --------

type AddStockToProducts struct{}

func (m *AddStockToProducts) Up(db *gorm.DB) error {
	return db.Migrator().AddColumn(&productsStock{}, "Stock")
}

func (m *AddStockToProducts) Down(db *gorm.DB) error {
	return db.Migrator().DropColumn(&productsStock{}, "Stock")
}

// -------- 0004: category column --------

type AddCategoryToProducts struct{}

func (m *AddCategoryToProducts) Up(db *gorm.DB) error {
	return db.Migrator().AddColumn(&productsCategory{}, "Category")
}

func (m *AddCategoryToProducts) Down(db *gorm.DB) error {
	return db.Migrator().DropColumn(&productsCategory{}, "Category")
}
