package handlers

import (
	"net/http"

	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/services"
	"github.com/storeline/backoffice/internal/validation"
)

type CustomerHandler struct {
	Svc *services.CustomerService
}

func NewCustomerHandler(svc *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Svc: svc}
}

// List: GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

// Save: POST /customer/save, create-or-update dispatch on id presence.
func (h *CustomerHandler) Save(w http.ResponseWriter, r *http.Request) {
	var in validation.CustomerInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	if in.ID == 0 {
		c, err := h.Svc.Create(in)
		if err != nil {
			respondError(w, err)
			return
		}
		httpx.Success(w, http.StatusCreated, "Customer saved successfully", c)
		return
	}
	c, err := h.Svc.Update(in)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Customer updated successfully", c)
}

// View: GET /customer/view/{id}
func (h *CustomerHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	c, err := h.Svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Customer retrieved successfully", c)
}

// Delete: POST /customer/delete with body {"id": n}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Svc.Delete(in.ID); err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Customer deleted successfully", nil)
}
