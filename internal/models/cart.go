package models

import "time"

// CartLine is one (customer, product, quantity) row awaiting invoicing.
// The composite unique index makes repeated adds increment the existing row
// instead of duplicating it.
type CartLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index:idx_customer_product,unique,priority:1" json:"customer_id"`
	ProductID  uint      `gorm:"not null;index:idx_customer_product,unique,priority:2" json:"product_id"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
