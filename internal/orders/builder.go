package orders

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/cart"
	"github.com/Vladimir-Maksimov/education/internal/catalog"
	"github.com/Vladimir-Maksimov/education/internal/models"
)

var (
	// ErrEmptyCart rejects checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrProductNotFound means a cart entry stopped resolving between cart
	// time and checkout time. The whole checkout is rolled back.
	ErrProductNotFound = errors.New("product not found")

	// ErrNumberConflict means a concurrent checkout claimed the same order
	// number first. The caller retries the entire PlaceOrder call.
	ErrNumberConflict = errors.New("order number conflict")
)

// CheckoutInput carries the contact fields of the order form. Field-level
// validation happens at the binding layer; by the time PlaceOrder runs the
// input is well-formed.
type CheckoutInput struct {
	FullName   string `json:"full_name" binding:"required,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required,max=250"`
	PostalCode string `json:"postal_code" binding:"required,max=20"`
	City       string `json:"city" binding:"required,max=100"`
}

// PlaceOrder materializes an order and its items from the cart, all inside
// one transaction: sequence the order number, insert the order, resolve
// every cart entry against the catalog at its current price and insert the
// item with that snapshot. Any failure leaves no rows behind. The cart is
// cleared only after the transaction commits; on failure it is untouched so
// the caller can retry.
func PlaceOrder(db *gorm.DB, in CheckoutInput, c cart.Cart) (*models.Order, error) {
	if len(c) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		number, err := NextOrderNumber(tx)
		if err != nil {
			return err
		}

		order = models.Order{
			OrderNumber: number,
			FullName:    in.FullName,
			Email:       in.Email,
			Address:     in.Address,
			PostalCode:  in.PostalCode,
			City:        in.City,
			Status:      models.StatusCreated,
		}
		if err := tx.Create(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", ErrNumberConflict, number)
			}
			return err
		}

		store := catalog.NewStore(tx)
		for _, productID := range c.ProductIDs() {
			product, err := store.ProductByID(productID)
			if err != nil {
				if errors.Is(err, catalog.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
				}
				return err
			}

			quantity := c[productID]
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  uint(quantity),
				Price:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Items").First(&order, order.ID).Error
	})
	if err != nil {
		return nil, err
	}

	c.Clear()
	return &order, nil
}
