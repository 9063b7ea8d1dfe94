package repositories

import (
	"testing"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// useTestDB swaps the shared handle for an in-memory database with the
// products table migrated, restoring the previous handle afterwards.
func useTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Product{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

func TestCreateAssignsIDAndFindRoundTrips(t *testing.T) {
	useTestDB(t)
	repo := NewProductRepository()

	product := models.Product{Name: "Lamp", Price: 9.9, Description: "LED lamp", Stock: 3, Category: "Home"}
	require.NoError(t, repo.Create(&product))
	require.NotZero(t, product.ID)

	found, err := repo.Find(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lamp", found.Name)
	assert.Equal(t, uint(3), found.Stock)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestFindMissingRowReturnsRecordNotFound(t *testing.T) {
	useTestDB(t)

	_, err := NewProductRepository().Find(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAllReturnsEveryRow(t *testing.T) {
	useTestDB(t)
	repo := NewProductRepository()

	require.NoError(t, repo.Create(&models.Product{Name: "Lamp", Price: 9.9, Description: "d", Stock: 1, Category: "Home"}))
	require.NoError(t, repo.Create(&models.Product{Name: "Mug", Price: 4.5, Description: "d", Stock: 2, Category: "Kitchen"}))

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCategoriesAreDistinctAndNonEmpty(t *testing.T) {
	db := useTestDB(t)
	repo := NewProductRepository()

	require.NoError(t, repo.Create(&models.Product{Name: "Lamp", Price: 9.9, Description: "d", Stock: 1, Category: "Home"}))
	require.NoError(t, repo.Create(&models.Product{Name: "Vase", Price: 7.5, Description: "d", Stock: 1, Category: "Home"}))
	require.NoError(t, repo.Create(&models.Product{Name: "Mug", Price: 4.5, Description: "d", Stock: 2, Category: "Kitchen"}))

	// A blanked category must not appear in the list.
	require.NoError(t, db.Model(&models.Product{}).Where("name = ?", "Mug").Update("category", "").Error)

	categories, err := repo.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Home"}, categories)
}

func TestUpdatePersistsAllFields(t *testing.T) {
	useTestDB(t)
	repo := NewProductRepository()

	product := models.Product{Name: "Lamp", Price: 9.9, Description: "d", Stock: 1, Category: "Home"}
	require.NoError(t, repo.Create(&product))

	product.Name = "Desk Lamp"
	product.Stock = 7
	require.NoError(t, repo.Update(&product))

	found, err := repo.Find(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", found.Name)
	assert.Equal(t, uint(7), found.Stock)
}

func TestDeleteRemovesTheRow(t *testing.T) {
	useTestDB(t)
	repo := NewProductRepository()

	product := models.Product{Name: "Lamp", Price: 9.9, Description: "d", Stock: 1, Category: "Home"}
	require.NoError(t, repo.Create(&product))
	require.NoError(t, repo.Delete(&product))

	_, err := repo.Find(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
