package models

import "time"

type Order struct {
	ID         uint64 `gorm:"primaryKey"`
	CustomerID uint64 `gorm:"index;not null"`
	Name       string `gorm:"size:255;not null"`
	Shipped    bool   `gorm:"not null"`
	Delivered  bool   `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Order) TableName() string {
	return "orders"
}
