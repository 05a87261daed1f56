package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/models"
)

// InvoiceService turns a customer's cart into a persisted invoice snapshot.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService { return &InvoiceService{db: db} }

// InvoiceLine is the per-line breakdown returned for receipt display. It is
// not persisted with the invoice.
type InvoiceLine struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type GeneratedInvoice struct {
	Invoice  models.Invoice `json:"invoice"`
	Products []InvoiceLine  `json:"products"`
}

type cartRow struct {
	ProductID   uint
	Quantity    int
	Price       decimal.Decimal
	ProductName string
}

// Generate reads the customer's cart, prices it, persists the invoice and
// clears the cart in one transaction. Nothing is committed on any failure.
//
// All arithmetic is decimal; stored figures are rounded to 2 decimal places
// once, from full precision. A discount larger than the subtotal yields a
// negative total rather than clamping to zero.
func (s *InvoiceService) Generate(customerID uint, taxRate, discount decimal.Decimal) (*GeneratedInvoice, error) {
	var out *GeneratedInvoice
	err := s.db.Transaction(func(tx *gorm.DB) error {
		q := tx.Table("cart_lines").
			Select("cart_lines.product_id, cart_lines.quantity, products.price, products.name as product_name").
			Joins("LEFT JOIN products ON products.id = cart_lines.product_id").
			Where("cart_lines.customer_id = ?", customerID)
		if tx.Dialector.Name() != "sqlite" {
			// Lock the cart rows so a concurrent generation for the same
			// customer cannot read and clear the same lines. SQLite
			// serializes writers on its own and has no FOR UPDATE.
			q = q.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "cart_lines"}})
		}
		var rows []cartRow
		if err := q.Scan(&rows).Error; err != nil {
			return apperr.Internal("failed to read cart", err)
		}
		if len(rows) == 0 {
			return apperr.BusinessRule("No products in cart to generate invoice.")
		}

		// Independent of request validation: the cart read and the customer
		// read are separate queries and must each hold on their own.
		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("The customer associated with this cart could not be found.")
			}
			return apperr.Internal("failed to load customer", err)
		}

		subtotal := decimal.Zero
		lines := make([]InvoiceLine, 0, len(rows))
		for _, r := range rows {
			lineTotal := r.Price.Mul(decimal.NewFromInt(int64(r.Quantity)))
			subtotal = subtotal.Add(lineTotal)
			lines = append(lines, InvoiceLine{
				ProductName: r.ProductName,
				Quantity:    r.Quantity,
				Price:       r.Price,
				TotalAmount: lineTotal.Round(2),
			})
		}
		discounted := subtotal.Sub(discount)
		taxAmount := taxRate.Div(decimal.NewFromInt(100)).Mul(discounted)
		total := discounted.Add(taxAmount)

		inv := models.Invoice{
			Number:          uuid.NewString(),
			CustomerID:      customer.ID,
			CustomerName:    customer.Name,
			CustomerEmail:   customer.Email,
			CustomerAddress: customer.Address,
			Subtotal:        subtotal.Round(2),
			Discount:        discount.Round(2),
			TaxRate:         taxRate.Round(2),
			TaxAmount:       taxAmount.Round(2),
			TotalAmount:     total.Round(2),
		}
		if err := tx.Create(&inv).Error; err != nil {
			return apperr.Internal("failed to persist invoice", err)
		}
		if err := tx.Where("customer_id = ?", customerID).Delete(&models.CartLine{}).Error; err != nil {
			return apperr.Internal("failed to clear cart", err)
		}
		out = &GeneratedInvoice{Invoice: inv, Products: lines}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *InvoiceService) Get(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No invoice found with the given ID.")
		}
		return nil, apperr.Internal("failed to load invoice", err)
	}
	return &inv, nil
}

func (s *InvoiceService) List() ([]models.Invoice, error) {
	var invs []models.Invoice
	if err := s.db.Order("id desc").Find(&invs).Error; err != nil {
		return nil, apperr.Internal("failed to list invoices", err)
	}
	return invs, nil
}
