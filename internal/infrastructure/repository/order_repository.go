package repository

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/mohammadpnp/customer-orders/internal/domain/customer"
	infradb "github.com/mohammadpnp/customer-orders/internal/infrastructure/db"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	row := models.Order{
		CustomerID: o.CustomerID,
		Name:       o.Name,
		Shipped:    o.Shipped,
		Delivered:  o.Delivered,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Order{}, wrapWriteError("create order", err)
	}
	return orderToDomain(row), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, customerID, orderID uint64) (*domain.Order, error) {
	var row models.Order

	err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}

	o := orderToDomain(row)
	return &o, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]domain.Order, error) {
	var rows []models.Order

	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, orderToDomain(row))
	}
	return orders, nil
}

func (r *OrderRepository) Delete(ctx context.Context, customerID, orderID uint64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", orderID, customerID).
		Delete(&models.Order{})
	if res.Error != nil {
		return fmt.Errorf("delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func orderToDomain(row models.Order) domain.Order {
	return domain.Order{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Shipped:    row.Shipped,
		Delivered:  row.Delivered,
	}
}

func wrapWriteError(op string, err error) error {
	if infradb.IsConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
