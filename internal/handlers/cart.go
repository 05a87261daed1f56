package handlers

import (
	"net/http"
	"strconv"

	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/services"
	"github.com/storeline/backoffice/internal/validation"
)

type CartHandler struct {
	Svc *services.CartService
}

func NewCartHandler(svc *services.CartService) *CartHandler { return &CartHandler{Svc: svc} }

// Add: POST /cart/add with body {product_id, quantity, customer_id}
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in validation.CartAddInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	line, err := h.Svc.Add(in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusCreated, "Product added to cart successfully", line)
}

// View: GET /cart/view[?customer_id=n]
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	var customerID uint
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "Invalid customer_id.")
			return
		}
		customerID = uint(n)
	}
	items, err := h.Svc.View(customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Cart retrieved successfully", items)
}

// Remove: POST /cart/remove with body {product_id, customer_id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var in validation.CartRemoveInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	if err := h.Svc.Remove(in); err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Product removed from cart successfully", nil)
}
