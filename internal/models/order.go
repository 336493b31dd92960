package models

import "time"

type OrderStatus string

const (
	StatusOffen         OrderStatus = "offen"
	StatusInArbeit      OrderStatus = "in_arbeit"
	StatusVersandt      OrderStatus = "versandt"
	StatusAbgeschlossen OrderStatus = "abgeschlossen"
)

type CustomerType string

const (
	CustomerBranch CustomerType = "branch"
	CustomerB2B    CustomerType = "b2b"
)

// Order carries a denormalized snapshot of the ordering user's type and
// label, taken at creation time and never re-derived.
type Order struct {
	ID            uint         `gorm:"primaryKey"`
	UserID        uint         `gorm:"index;not null"`
	User          User
	CustomerType  CustomerType `gorm:"type:varchar(20);not null"`
	CustomerLabel string       `gorm:"size:100;not null"`
	Status        OrderStatus  `gorm:"type:varchar(20);index;not null;default:offen"`
	Notes         string       `gorm:"type:text"`
	CreatedAt     time.Time

	Items []OrderItem
}

type OrderItem struct {
	ID      uint   `gorm:"primaryKey"`
	OrderID uint   `gorm:"index;not null"`
	Product string `gorm:"size:100;not null"`
	Size    string `gorm:"size:20;not null"` // "1kg" / "5kg" / "11kg"
	Qty     int    `gorm:"not null;default:1"`
}
