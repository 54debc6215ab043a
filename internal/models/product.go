package models

import "github.com/shopspring/decimal"

// Product rows are maintained by the admin surface; this service only reads them.
type Product struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	Characteristics string          `gorm:"type:text" json:"characteristics"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity        uint            `gorm:"not null" json:"quantity"`
	Image           *string         `json:"image,omitempty"`
}
