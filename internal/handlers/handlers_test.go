package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}, &models.CartLine{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seed minimal category/product/customer for cart and invoice tests
func seedFixtures(t *testing.T, db *gorm.DB) (category models.Category, product models.Product, customer models.Customer) {
	t.Helper()
	category = models.Category{Name: "Electronics", Description: "Gadgets"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("category: %v", err)
	}
	product = models.Product{Name: "Laptop", Price: decimal.RequireFromString("100.00"), Quantity: 10, CategoryID: category.ID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("product: %v", err)
	}
	customer = models.Customer{Name: "John Doe", Email: "john@example.com", Address: "1234 Elm St.", ContactNumber: "0123456789"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("customer: %v", err)
	}
	return
}

// envelope mirrors the wire shape with the data payload left raw so each test
// can decode it into whatever it expects.
type envelope struct {
	Status  string          `json:"status"`
	Message []string        `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, h http.HandlerFunc, target, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body=%s)", err, w.Body.String())
	}
	return w.Code, env
}

// newIDRequest builds a request carrying an {id} route parameter, for calling
// handlers directly without mounting the full router.
func newIDRequest(method, target string, id uint) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", strconv.Itoa(int(id)))
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
