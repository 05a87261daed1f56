package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an immutable financial record. Customer fields are copied at
// generation time so later edits to the customer row cannot change it.
type Invoice struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Number          string          `gorm:"size:36;not null;unique" json:"number"`
	CustomerID      uint            `gorm:"not null;index" json:"customer_id"`
	CustomerName    string          `gorm:"not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"not null" json:"customer_email"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	Subtotal        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
	Discount        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"discount"`
	TaxRate         decimal.Decimal `gorm:"not null;type:decimal(5,2)" json:"tax_rate"`
	TaxAmount       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"tax_amount"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"-"`
}
