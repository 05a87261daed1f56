package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/handlers"
	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recover(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	catalog := services.NewCatalogService(db)
	ch := handlers.NewCategoryHandler(catalog)
	ph := handlers.NewProductHandler(catalog)
	cuh := handlers.NewCustomerHandler(services.NewCustomerService(db))
	cah := handlers.NewCartHandler(services.NewCartService(db))
	ih := handlers.NewInvoiceHandler(services.NewInvoiceService(db))

	r.Get("/categories", ch.List)
	r.Post("/category/save", ch.Save)
	r.Put("/category/update", ch.Update)
	r.Get("/category/view/{id}", ch.View)
	r.Delete("/category/delete/{id}", ch.Delete)

	r.Get("/products", ph.List)
	r.Post("/product/save", ph.Save)
	r.Get("/product/view/{id}", ph.View)
	r.Post("/product/delete", ph.Delete)

	r.Get("/customers", cuh.List)
	r.Post("/customer/save", cuh.Save)
	r.Get("/customer/view/{id}", cuh.View)
	r.Post("/customer/delete", cuh.Delete)

	r.Post("/cart/add", cah.Add)
	r.Get("/cart/view", cah.View)
	r.Post("/cart/remove", cah.Remove)

	r.Post("/invoice/generate", ih.Generate)
	r.Get("/invoices", ih.List)
	r.Get("/invoice/view/{id}", ih.View)
	r.Get("/invoice/pdf/{id}", ih.PDF)

	return r
}
