package routes

import (
	"net/http"

	"github.com/shashiranjanraj/backoffice/app/controllers"
	"github.com/shashiranjanraj/backoffice/pkg/metrics"
	"github.com/shashiranjanraj/backoffice/pkg/middleware"
	"github.com/shashiranjanraj/backoffice/pkg/router"
)

// RegisterAPI wires every endpoint. Only the liveness root, the metrics
// scrape endpoint, and login are unauthenticated; everything under /products
// sits behind the bearer guard.
func RegisterAPI(r *router.Router) {
	authController := controllers.NewAuthController()
	productController := controllers.NewProductController()

	r.Get("/", "liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK")) //nolint:errcheck
	})
	r.Handle("/metrics", metrics.Handler())

	r.Post("/auth/login", "auth.login", authController.Login)

	products := r.Group("/products", middleware.BearerAuth)
	products.Get("", "products.index", productController.Index)
	products.Get("/categories", "products.categories", productController.Categories)
	products.Get("/{id}", "products.show", productController.Show)
	products.Post("", "products.store", productController.Store)
	products.Put("/{id}", "products.update", productController.Update)
	products.Delete("/{id}", "products.destroy", productController.Destroy)
	products.Post("/ai-suggest", "products.suggest", productController.Suggest)
}
