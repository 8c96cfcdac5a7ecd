package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderRecord is the persisted outcome of one order submission.
// Reference is the client-side id; StoreOrderID is whatever the store answered with.
type OrderRecord struct {
	ID            uint            `gorm:"primaryKey"`
	Reference     string          `gorm:"uniqueIndex;not null"`
	StoreID       string          `gorm:"index;not null"`
	StoreOrderID  string          `gorm:"index"`
	Status        string          `gorm:"index;not null"`
	CustomerEmail string          `gorm:"not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CouponCodes   pq.StringArray  `gorm:"type:text[]"`
	Lines         []OrderLine     `gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time
}

func (o *OrderRecord) TableName() string {
	return "orders"
}

// OrderLine is one product line of an OrderRecord. Options holds the JSON-encoded topping options.
type OrderLine struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID uint   `gorm:"index;not null"`
	Code    string `gorm:"not null"`
	Name    string `gorm:"not null"`
	Qty     int    `gorm:"not null"`
	Options string
}

func (l *OrderLine) TableName() string {
	return "order_lines"
}
