package handlers

import (
	"net/http"

	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/services"
	"github.com/storeline/backoffice/internal/validation"
)

type ProductHandler struct {
	Svc *services.CatalogService
}

func NewProductHandler(svc *services.CatalogService) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

// List: GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Svc.ListProducts()
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Products retrieved successfully", products)
}

// Save: POST /product/save, create-or-update dispatch on id presence.
func (h *ProductHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in validation.ProductInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	if in.ID == 0 {
		p, err := h.Svc.CreateProduct(in)
		if err != nil {
			respondError(w, err)
			return
		}
		httpx.Success(w, http.StatusCreated, "Product saved successfully", p)
		return
	}
	p, err := h.Svc.UpdateProduct(in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Product updated successfully", p)
}

// View: GET /product/view/{id}
func (h *ProductHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	p, err := h.Svc.GetProduct(id)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Product retrieved successfully", p)
}

// Delete: POST /product/delete with body {"id": n}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var in struct {
		ID uint `json:"id"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if in.ID == 0 {
		httpx.ValidationError(w, map[string][]string{"id": {"The id field is required."}})
		return
	}
	if err := h.Svc.DeleteProduct(in.ID); err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Product deleted successfully", nil)
}
