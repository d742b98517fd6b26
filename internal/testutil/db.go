package testutil

import (
	"testing"

	infradb "github.com/mohammadpnp/customer-orders/internal/infrastructure/db"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// NewSQLiteDB returns a private in-memory database with the schema applied.
// It is closed when the test finishes, so every test starts empty.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, closeDB, err := infradb.OpenSQLite(":memory:", nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(closeDB)

	return gdb
}

func InsertCustomer(t *testing.T, gdb *gorm.DB, name, address string) models.Customer {
	t.Helper()

	row := models.Customer{Name: name, Address: address}
	if err := gdb.Create(&row).Error; err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return row
}

func InsertOrder(t *testing.T, gdb *gorm.DB, customerID uint64, name string, shipped, delivered bool) models.Order {
	t.Helper()

	row := models.Order{CustomerID: customerID, Name: name, Shipped: shipped, Delivered: delivered}
	if err := gdb.Create(&row).Error; err != nil {
		t.Fatalf("insert order: %v", err)
	}
	return row
}

func CountOrders(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(&models.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return n
}
