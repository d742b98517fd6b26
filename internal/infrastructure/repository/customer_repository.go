package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []models.Customer

	err := r.db.WithContext(ctx).
		Preload("Orders", orderedByID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, customerToDomain(row))
	}
	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	var row models.Customer

	err := r.db.WithContext(ctx).
		Preload("Orders", orderedByID).
		First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("get customer by id: %w", err)
	}

	c := customerToDomain(row)
	return &c, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check customer exists: %w", err)
	}
	return count > 0, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	row := models.Customer{
		Name:    c.Name,
		Address: c.Address,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Customer{}, wrapWriteError("create customer", err)
	}
	return customerToDomain(row), nil
}

// Delete removes the customer's orders and then the customer in one
// transaction. The ON DELETE CASCADE constraint covers orders inserted
// concurrently between the two statements.
func (r *CustomerRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error; err != nil {
			return fmt.Errorf("delete customer orders: %w", err)
		}

		res := tx.Delete(&models.Customer{}, id)
		if res.Error != nil {
			return wrapWriteError("delete customer", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCustomerNotFound
		}
		return nil
	})
}

func orderedByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func customerToDomain(row models.Customer) domain.Customer {
	orders := make([]domain.Order, 0, len(row.Orders))
	for _, o := range row.Orders {
		orders = append(orders, orderToDomain(o))
	}

	return domain.Customer{
		ID:      row.ID,
		Name:    row.Name,
		Address: row.Address,
		Orders:  orders,
	}
}
