package handlers

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/httpx"
	"github.com/storeline/backoffice/internal/pdf"
	"github.com/storeline/backoffice/internal/services"
	"github.com/storeline/backoffice/internal/validation"
)

type InvoiceHandler struct {
	Svc *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc}
}

// Generate: POST /invoice/generate with body {customer_id, tax_rate, discount?}
func (h *InvoiceHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var in validation.InvoiceInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if v := in.Validate(); !v.Empty() {
		httpx.ValidationError(w, v)
		return
	}
	discount := decimal.Zero
	if in.Discount != nil {
		discount = *in.Discount
	}
	result, err := h.Svc.Generate(in.CustomerID, *in.TaxRate, discount)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusCreated, "Invoice generated successfully", result)
}

// List: GET /invoices
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invs, err := h.Svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Invoices retrieved successfully", invs)
}

// View: GET /invoice/view/{id}
func (h *InvoiceHandler) View(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	inv, err := h.Svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	httpx.Success(w, http.StatusOK, "Invoice retrieved successfully", inv)
}

// PDF: GET /invoice/pdf/{id}
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}
	inv, err := h.Svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	data, err := pdf.Render(pdf.Receipt{
		Number:          inv.Number,
		Date:            inv.CreatedAt.Format("2006-01-02"),
		CustomerName:    inv.CustomerName,
		CustomerEmail:   inv.CustomerEmail,
		CustomerAddress: inv.CustomerAddress,
		Subtotal:        inv.Subtotal,
		Discount:        inv.Discount,
		TaxRate:         inv.TaxRate,
		TaxAmount:       inv.TaxAmount,
		TotalAmount:     inv.TotalAmount,
	})
	if err != nil {
		respondError(w, apperr.Internal("pdf generation failed", err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"invoice-"+strconv.Itoa(int(inv.ID))+".pdf\"")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
