package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product holds catalog data. Price and Quantity are live values; invoices
// snapshot them at generation time instead of referencing this row.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
