package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/apperr"
	"github.com/storeline/backoffice/internal/models"
	"github.com/storeline/backoffice/internal/validation"
)

// CatalogService owns category and product persistence. Create and Update are
// explicit operations; the boundary decides which to call.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

func (s *CatalogService) CreateCategory(in validation.CategoryInput) (*models.Category, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
		return nil, apperr.Internal("failed to check category name", err)
	}
	if count > 0 {
		return nil, apperr.BusinessRule("A category with this name already exists.")
	}
	cat := models.Category{Name: in.Name, Description: in.Description}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, apperr.Internal("failed to save category", err)
	}
	return &cat, nil
}

func (s *CatalogService) UpdateCategory(in validation.CategoryInput) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No category found with the given ID.")
		}
		return nil, apperr.Internal("failed to load category", err)
	}
	cat.Name = in.Name
	cat.Description = in.Description
	if err := s.db.Save(&cat).Error; err != nil {
		return nil, apperr.Internal("failed to save category", err)
	}
	return &cat, nil
}

func (s *CatalogService) GetCategory(id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No category found with the given ID.")
		}
		return nil, apperr.Internal("failed to load category", err)
	}
	return &cat, nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("id").Find(&cats).Error; err != nil {
		return nil, apperr.Internal("failed to list categories", err)
	}
	return cats, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	var count int64
	if err := s.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
		return apperr.Internal("failed to check category usage", err)
	}
	if count > 0 {
		return apperr.BusinessRule("Category is still referenced by products.")
	}
	res := s.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return apperr.Internal("failed to delete category", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("No category found with the given ID.")
	}
	return nil
}

func (s *CatalogService) CreateProduct(in validation.ProductInput) (*models.Product, error) {
	if err := s.ensureCategory(in.CategoryID); err != nil {
		return nil, err
	}
	p := models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Round(2),
		Quantity:    in.Quantity,
		CategoryID:  in.CategoryID,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, apperr.Internal("failed to save product", err)
	}
	return &p, nil
}

func (s *CatalogService) UpdateProduct(in validation.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No product found with the given ID.")
		}
		return nil, apperr.Internal("failed to load product", err)
	}
	if err := s.ensureCategory(in.CategoryID); err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price.Round(2)
	p.Quantity = in.Quantity
	p.CategoryID = in.CategoryID
	if err := s.db.Save(&p).Error; err != nil {
		return nil, apperr.Internal("failed to save product", err)
	}
	return &p, nil
}

func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("No product found with the given ID.")
		}
		return nil, apperr.Internal("failed to load product", err)
	}
	return &p, nil
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("id").Find(&products).Error; err != nil {
		return nil, apperr.Internal("failed to list products", err)
	}
	return products, nil
}

// DeleteProduct removes the product and any cart lines that reference it so
// no cart is left pointing at a missing product.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartLine{}).Error; err != nil {
			return apperr.Internal("failed to remove cart lines for product", err)
		}
		res := tx.Delete(&models.Product{}, id)
		if res.Error != nil {
			return apperr.Internal("failed to delete product", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("No product found with the given ID.")
		}
		return nil
	})
}

func (s *CatalogService) ensureCategory(id uint) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.Internal("failed to check category", err)
	}
	if count == 0 {
		return apperr.NotFound("No category found with the given ID.")
	}
	return nil
}
