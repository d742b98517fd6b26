package models

import "time"

type Customer struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"size:255;not null"`
	Address   string  `gorm:"size:255;not null"`
	Orders    []Order `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string {
	return "customers"
}
