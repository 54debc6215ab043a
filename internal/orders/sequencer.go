package orders

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/models"
)

const (
	firstOrderNumber = "000001"
	maxOrderNumber   = 999999
)

// ErrNumberExhausted means the 6-digit order-number space is used up.
// There is no valid successor to 999999; the increment is never wrapped.
var ErrNumberExhausted = errors.New("order number space exhausted")

// NextOrderNumber computes the number for the order being created: one more
// than the number of the most recently created order, zero-padded to six
// digits. "Most recently created" is by id, since ids are assigned in
// creation order while numbers are what we are deriving.
//
// The read-increment-insert sequence is not atomic on its own; callers must
// run it inside the same transaction that inserts the order, and the unique
// index on order_number turns a lost race into a retryable conflict.
func NextOrderNumber(tx *gorm.DB) (string, error) {
	var last models.Order
	err := tx.Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return firstOrderNumber, nil
	}
	if err != nil {
		return "", err
	}

	n, err := strconv.Atoi(last.OrderNumber)
	if err != nil {
		return "", fmt.Errorf("malformed order number %q on order %d: %w", last.OrderNumber, last.ID, err)
	}
	if n >= maxOrderNumber {
		return "", ErrNumberExhausted
	}

	return fmt.Sprintf("%06d", n+1), nil
}
