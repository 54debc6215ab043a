package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values, in fulfilment order.
const (
	StatusCreated   = "created"
	StatusPreparing = "preparing"
	StatusShipped   = "shipped"
	StatusWaiting   = "waiting"
	StatusDelivered = "delivered"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OrderNumber string      `gorm:"size:6;uniqueIndex;not null" json:"order_number"`
	FullName    string      `gorm:"size:50;not null" json:"full_name"`
	Email       string      `gorm:"not null" json:"email"`
	Address     string      `gorm:"size:250;not null" json:"address"`
	PostalCode  string      `gorm:"size:20;not null" json:"postal_code"`
	City        string      `gorm:"size:100;not null" json:"city"`
	Paid        bool        `gorm:"not null;default:false" json:"paid"`
	Status      string      `gorm:"size:20;not null;default:created" json:"status"`
	CreatedAt   time.Time   `json:"created"`
	UpdatedAt   time.Time   `json:"updated"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// TotalCost sums the line-price snapshots of all items.
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	return total
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index;not null" json:"order_id"`
	ProductID uint `gorm:"index;not null" json:"product_id"`
	Quantity  uint `gorm:"not null" json:"quantity"`
	// Price is the line total (unit price × quantity) captured at checkout.
	// It must never be re-derived from the Product row afterwards.
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Product   Product         `gorm:"constraint:OnDelete:RESTRICT" json:"product"`
	CreatedAt time.Time       `json:"created_at"`
}
