package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRuleHelpers(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	RequiredID("category_id", 0, v)
	MaxLen("name", strings.Repeat("x", 300), 255, v)
	Email("email", "nope", v)
	ContactNumber("contact_number", "12ab", v)
	MinInt("quantity", -1, 0, v)

	assert.Len(t, v["name"], 2)
	assert.Len(t, v["category_id"], 1)
	assert.Len(t, v["email"], 1)
	assert.Len(t, v["contact_number"], 1)
	assert.Len(t, v["quantity"], 1)

	ok := Violations{}
	Required("name", "Laptop", ok)
	Email("email", "john@example.com", ok)
	ContactNumber("contact_number", "0123456789", ok)
	MinInt("quantity", 0, 0, ok)
	assert.True(t, ok.Empty())
}

func TestEmailAndContactSkipWhenBlank(t *testing.T) {
	// blank values are Required's job, format rules stay out of the way
	v := Violations{}
	Email("email", "", v)
	ContactNumber("contact_number", "", v)
	assert.True(t, v.Empty())
}

func TestProductInputValidate(t *testing.T) {
	in := ProductInput{Name: "Laptop", Price: decimal.RequireFromString("99.99"), Quantity: 5, CategoryID: 1}
	assert.True(t, in.Validate().Empty())

	bad := ProductInput{Price: decimal.RequireFromString("-1")}
	v := bad.Validate()
	assert.Contains(t, v, "name")
	assert.Contains(t, v, "price")
	assert.Contains(t, v, "category_id")
}

func TestInvoiceInputValidate(t *testing.T) {
	rate := decimal.RequireFromString("15")
	zero := decimal.Zero
	in := InvoiceInput{CustomerID: 1, TaxRate: &rate}
	assert.True(t, in.Validate().Empty())

	// zero is a legitimate rate, absence is not
	in = InvoiceInput{CustomerID: 1, TaxRate: &zero}
	assert.True(t, in.Validate().Empty())

	in = InvoiceInput{CustomerID: 1}
	assert.Contains(t, in.Validate(), "tax_rate")

	neg := decimal.RequireFromString("-3")
	in = InvoiceInput{CustomerID: 1, TaxRate: &rate, Discount: &neg}
	assert.Contains(t, in.Validate(), "discount")
}

func TestCustomerInputValidate(t *testing.T) {
	in := CustomerInput{Name: "John Doe", Email: "john@example.com", Address: "1234 Elm St.", ContactNumber: "0123456789"}
	assert.True(t, in.Validate().Empty())

	in.Email = "not-an-email"
	in.ContactNumber = "123"
	v := in.Validate()
	assert.Contains(t, v, "email")
	assert.Contains(t, v, "contact_number")
}
