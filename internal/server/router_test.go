package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/models"
)

type envelope struct {
	Status  string          `json:"status"`
	Message []string        `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Customer{}, &models.CartLine{}, &models.Invoice{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, zerolog.Nop())
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	var env envelope
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode envelope: %v (body=%s)", method, target, err, w.Body.String())
		}
	}
	return w.Code, env
}

func idOf(t *testing.T, env envelope) uint {
	t.Helper()
	var row struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &row); err != nil {
		t.Fatalf("decode id: %v", err)
	}
	if row.ID == 0 {
		t.Fatalf("expected non-zero id in %s", string(env.Data))
	}
	return row.ID
}

// TestFullOrderFlow exercises the whole surface end to end: catalog setup,
// cart building and invoice generation through the mounted router.
func TestFullOrderFlow(t *testing.T) {
	h := newTestRouter(t)

	if code, _ := do(t, h, http.MethodGet, "/health", ""); code != http.StatusOK {
		t.Fatalf("health expected 200 got %d", code)
	}
	if code, _ := do(t, h, http.MethodGet, "/healthz", ""); code != http.StatusOK {
		t.Fatalf("healthz expected 200 got %d", code)
	}

	code, env := do(t, h, http.MethodPost, "/category/save", `{"name":"Electronics"}`)
	if code != http.StatusCreated {
		t.Fatalf("category save expected 201 got %d", code)
	}
	categoryID := idOf(t, env)

	code, env = do(t, h, http.MethodPost, "/product/save",
		fmt.Sprintf(`{"name":"Laptop","price":100.00,"quantity":10,"category_id":%d}`, categoryID))
	if code != http.StatusCreated {
		t.Fatalf("product save expected 201 got %d", code)
	}
	productID := idOf(t, env)

	code, env = do(t, h, http.MethodPost, "/customer/save",
		`{"name":"John Doe","email":"john@example.com","address":"1234 Elm St.","contact_number":"0123456789"}`)
	if code != http.StatusCreated {
		t.Fatalf("customer save expected 201 got %d", code)
	}
	customerID := idOf(t, env)

	addBody := fmt.Sprintf(`{"customer_id":%d,"product_id":%d,"quantity":1}`, customerID, productID)
	if code, _ = do(t, h, http.MethodPost, "/cart/add", addBody); code != http.StatusCreated {
		t.Fatalf("cart add expected 201 got %d", code)
	}
	if code, _ = do(t, h, http.MethodPost, "/cart/add", addBody); code != http.StatusCreated {
		t.Fatalf("second cart add expected 201 got %d", code)
	}

	code, env = do(t, h, http.MethodGet, fmt.Sprintf("/cart/view?customer_id=%d", customerID), "")
	if code != http.StatusOK {
		t.Fatalf("cart view expected 200 got %d", code)
	}
	var items []struct {
		Quantity int `json:"quantity"`
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", items)
	}

	code, env = do(t, h, http.MethodPost, "/invoice/generate",
		fmt.Sprintf(`{"customer_id":%d,"tax_rate":18.00,"discount":20.00}`, customerID))
	if code != http.StatusCreated {
		t.Fatalf("invoice generate expected 201 got %d body=%s", code, string(env.Data))
	}
	var generated struct {
		Invoice models.Invoice `json:"invoice"`
	}
	if err := json.Unmarshal(env.Data, &generated); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	// subtotal 200, discount 20, tax 18% of 180 = 32.40, total 212.40
	if !generated.Invoice.TotalAmount.Equal(decimal.RequireFromString("212.40")) {
		t.Fatalf("total_amount = %s", generated.Invoice.TotalAmount)
	}
	if generated.Invoice.Number == "" {
		t.Fatalf("expected invoice number to be set")
	}

	// cart is consumed, a second generate fails
	if code, _ = do(t, h, http.MethodPost, "/invoice/generate",
		fmt.Sprintf(`{"customer_id":%d,"tax_rate":18.00}`, customerID)); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart got %d", code)
	}

	code, env = do(t, h, http.MethodGet, "/invoices", "")
	if code != http.StatusOK {
		t.Fatalf("invoices expected 200 got %d", code)
	}
	var list []models.Invoice
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode invoices: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 invoice got %d", len(list))
	}

	code, _ = do(t, h, http.MethodGet, fmt.Sprintf("/invoice/view/%d", generated.Invoice.ID), "")
	if code != http.StatusOK {
		t.Fatalf("invoice view expected 200 got %d", code)
	}

	if code, _ = do(t, h, http.MethodGet, "/invoice/view/999", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing invoice got %d", code)
	}
	if code, _ = do(t, h, http.MethodGet, "/nope", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route got %d", code)
	}
}

func TestRouterRejectsMalformedJSON(t *testing.T) {
	h := newTestRouter(t)
	if code, _ := do(t, h, http.MethodPost, "/category/save", `{"name":`); code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", code)
	}
}
