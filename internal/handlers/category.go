package handlers

import (
	"net/http"

	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/services"
	"github.com/storeline/backoffice/internal/validation"
)

type CategoryHandler struct {
	Svc *services.CatalogService
}

func NewCategoryHandler(svc *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{Svc: svc}
}

// List: GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.Svc.ListCategories()
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Categories retrieved successfully", cats)
}

// Save: POST /category/save. Dispatches to create or update depending on
// whether the body carries an id; the service operations stay explicit.
func (h *CategoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in validation.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	if in.ID == 0 {
		cat, err := h.Svc.CreateCategory(in)
		if err != nil {
			respondError(w, err)
			return
		}
		httpx.Success(w, http.StatusCreated, "Category saved successfully", cat)
		return
	}
	cat, err := h.Svc.UpdateCategory(in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Category updated successfully", cat)
}

// Update: PUT /category/update
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in validation.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	v := in.Validate()
	if in.ID == 0 {
		v.Add("id", "The id field is required.")
	}
	if !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	cat, err := h.Svc.UpdateCategory(in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Category updated successfully", cat)
}

// View: GET /category/view/{id}
func (h *CategoryHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	cat, err := h.Svc.GetCategory(id)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Category retrieved successfully", cat)
}

// Delete: DELETE /category/delete/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Category deleted successfully", nil)
}
