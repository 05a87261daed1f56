package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storeline/backoffice/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	err = db.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Customer{},
		&models.CartLine{}, &models.Invoice{},
	)
	require.NoError(t, err)
	return db
}

func seedCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()
	cat := models.Category{Name: "Electronics", Description: "Gadgets"}
	require.NoError(t, db.Create(&cat).Error)
	return cat
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price string, stock int) models.Product {
	t.Helper()
	p := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Quantity:   stock,
		CategoryID: categoryID,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	c := models.Customer{
		Name:          "John Doe",
		Email:         email,
		Address:       "1234 Elm St.",
		ContactNumber: "0123456789",
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func seedCartLine(t *testing.T, db *gorm.DB, customerID, productID uint, qty int) models.CartLine {
	t.Helper()
	line := models.CartLine{CustomerID: customerID, ProductID: productID, Quantity: qty}
	require.NoError(t, db.Create(&line).Error)
	return line
}
