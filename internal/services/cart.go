package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/models"
	"github.com/storeline/backoffice/internal/validation"
)

type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService { return &CartService{db: db} }

// CartItem is a cart line joined with live product data for display.
type CartItem struct {
	CartID      uint            `json:"cart_id"`
	CustomerID  uint            `json:"customer_id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Add upserts a cart line: adding a product already in the customer's cart
// increments the existing line instead of creating a second one.
func (s *CartService) Add(in validation.CartAddInput) (*models.CartLine, error) {
	var product models.Product
	if err := s.db.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No product found with the given ID.")
		}
		return nil, apperr.Internal("failed to load product", err)
	}
	if product.Quantity < in.Quantity {
		return nil, apperr.BusinessRule("Out of Stock.")
	}
	var count int64
	if err := s.db.Model(&models.Customer{}).Where("id = ?", in.CustomerID).Count(&count).Error; err != nil {
		return nil, apperr.Internal("failed to check customer", err)
	}
	if count == 0 {
		return nil, apperr.NotFound("No customer found with the given ID.")
	}

	var line models.CartLine
	err := s.db.Where("customer_id = ? AND product_id = ?", in.CustomerID, in.ProductID).First(&line).Error
	switch {
	case err == nil:
		line.Quantity += in.Quantity
		if err := s.db.Save(&line).Error; err != nil {
			return nil, apperr.Internal("failed to update cart line", err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartLine{CustomerID: in.CustomerID, ProductID: in.ProductID, Quantity: in.Quantity}
		if err := s.db.Create(&line).Error; err != nil {
			return nil, apperr.Internal("failed to create cart line", err)
		}
	default:
		return nil, apperr.Internal("failed to read cart", err)
	}
	return &line, nil
}

func (s *CartService) Remove(in validation.CartRemoveInput) error {
	res := s.db.Where("customer_id = ? AND product_id = ?", in.CustomerID, in.ProductID).Delete(&models.CartLine{})
	if res.Error != nil {
		return apperr.Internal("failed to remove cart line", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.BusinessRule("The specified product is not in your cart.")
	}
	return nil
}

// View lists cart lines joined with product name and price. customerID 0
// lists every cart.
func (s *CartService) View(customerID uint) ([]CartItem, error) {
	q := s.db.Table("cart_lines").
		Select("cart_lines.id as cart_id, cart_lines.customer_id, cart_lines.product_id, products.name as product_name, products.price, cart_lines.quantity").
		Joins("LEFT JOIN products ON products.id = cart_lines.product_id")
	if customerID != 0 {
		q = q.Where("cart_lines.customer_id = ?", customerID)
	}
	var items []CartItem
	if err := q.Order("cart_lines.id").Scan(&items).Error; err != nil {
		return nil, apperr.Internal("failed to list cart", err)
	}
	return items, nil
}
