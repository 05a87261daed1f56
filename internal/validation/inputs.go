package validation

import "github.com/shopspring/decimal"

// CategoryInput covers both create and update; ID presence decides which
// operation the boundary dispatches to.
type CategoryInput struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in CategoryInput) Validate() Violations {
	v := Violations{}
	Required("name", in.Name, v)
	MaxLen("name", in.Name, 255, v)
	return v
}

type ProductInput struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CategoryID  uint            `json:"category_id"`
}

func (in ProductInput) Validate() Violations {
	v := Violations{}
	Required("name", in.Name, v)
	MaxLen("name", in.Name, 255, v)
	if in.Price.IsNegative() {
		v.Add("price", "The price must be at least 0.")
	}
	MinInt("quantity", in.Quantity, 0, v)
	RequiredID("category_id", in.CategoryID, v)
	return v
}

type CustomerInput struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
}

func (in CustomerInput) Validate() Violations {
	v := Violations{}
	Required("name", in.Name, v)
	MaxLen("name", in.Name, 255, v)
	Required("email", in.Email, v)
	Email("email", in.Email, v)
	Required("address", in.Address, v)
	MaxLen("address", in.Address, 500, v)
	Required("contact_number", in.ContactNumber, v)
	ContactNumber("contact_number", in.ContactNumber, v)
	return v
}

type CartAddInput struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
	Quantity   int  `json:"quantity"`
}

func (in CartAddInput) Validate() Violations {
	v := Violations{}
	RequiredID("customer_id", in.CustomerID, v)
	RequiredID("product_id", in.ProductID, v)
	MinInt("quantity", in.Quantity, 1, v)
	return v
}

type CartRemoveInput struct {
	CustomerID uint `json:"customer_id"`
	ProductID  uint `json:"product_id"`
}

func (in CartRemoveInput) Validate() Violations {
	v := Violations{}
	RequiredID("customer_id", in.CustomerID, v)
	RequiredID("product_id", in.ProductID, v)
	return v
}

// InvoiceInput uses pointers for the numeric fields so that an absent
// tax_rate can be told apart from a legitimate 0.
type InvoiceInput struct {
	CustomerID uint             `json:"customer_id"`
	TaxRate    *decimal.Decimal `json:"tax_rate"`
	Discount   *decimal.Decimal `json:"discount"`
}

func (in InvoiceInput) Validate() Violations {
	v := Violations{}
	RequiredID("customer_id", in.CustomerID, v)
	if in.TaxRate == nil {
		v.Add("tax_rate", "The tax_rate field is required.")
	} else if in.TaxRate.IsNegative() {
		v.Add("tax_rate", "The tax_rate must be at least 0.")
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		v.Add("discount", "The discount must be at least 0.")
	}
	return v
}
