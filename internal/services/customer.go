package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/models"
	"github.com/storeline/backoffice/internal/validation"
)

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService { return &CustomerService{db: db} }

func (s *CustomerService) Create(in validation.CustomerInput) (*models.Customer, error) {
	if err := s.ensureEmailFree(in.Email, 0); err != nil {
		return nil, err
	}
	c := models.Customer{
		Name:          in.Name,
		Email:         in.Email,
		Address:       in.Address,
		ContactNumber: in.ContactNumber,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, apperr.Internal("failed to save customer", err)
	}
	return &c, nil
}

func (s *CustomerService) Update(in validation.CustomerInput) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No customer found with the given ID.")
		}
		return nil, apperr.Internal("failed to load customer", err)
	}
	if err := s.ensureEmailFree(in.Email, c.ID); err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Address = in.Address
	c.ContactNumber = in.ContactNumber
	if err := s.db.Save(&c).Error; err != nil {
		return nil, apperr.Internal("failed to save customer", err)
	}
	return &c, nil
}

func (s *CustomerService) Get(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No customer found with the given ID.")
		}
		return nil, apperr.Internal("failed to load customer", err)
	}
	return &c, nil
}

func (s *CustomerService) List() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, apperr.Internal("failed to list customers", err)
	}
	return customers, nil
}

// Delete removes the customer and their pending cart lines. Invoices keep
// their snapshot and are not touched.
func (s *CustomerService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var invoices int64
		if err := tx.Model(&models.Invoice{}).Where("customer_id = ?", id).Count(&invoices).Error; err != nil {
			return apperr.Internal("failed to check invoices", err)
		}
		if invoices > 0 {
			return apperr.BusinessRule("Customer has invoices and cannot be deleted.")
		}
		if err := tx.Where("customer_id = ?", id).Delete(&models.CartLine{}).Error; err != nil {
			return apperr.Internal("failed to remove cart lines for customer", err)
		}
		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return apperr.Internal("failed to delete customer", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("No customer found with the given ID.")
		}
		return nil
	})
}

// ensureEmailFree enforces the unique-email rule as a field violation so the
// client sees it on the email field, like any other validation failure.
func (s *CustomerService) ensureEmailFree(email string, selfID uint) error {
	q := s.db.Model(&models.Customer{}).Where("email = ?", email)
	if selfID != 0 {
		q = q.Where("id <> ?", selfID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperr.Internal("failed to check email", err)
	}
	if count > 0 {
		return apperr.Validation(map[string][]string{"email": {"The email has already been taken."}})
	}
	return nil
}
