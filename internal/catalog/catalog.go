package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/models"
)

// ErrNotFound reports a product id that does not resolve to a catalog row.
var ErrNotFound = errors.New("product not found")

// Store is the read-only side of the product catalog. Products are created
// and updated by the admin surface, never here.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Products() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ProductByID resolves a decimal product-id string, the form cart entries
// are keyed by. A malformed id resolves the same way as a missing row.
func (s *Store) ProductByID(id string) (*models.Product, error) {
	numericID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var product models.Product
	if err := s.db.First(&product, numericID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}
