package cart

import (
	"encoding/gob"
	"errors"
	"sort"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/shopspring/decimal"

	"github.com/Vladimir-Maksimov/education/internal/models"
)

const sessionKey = "cart"

func init() {
	gob.Register(Cart{})
}

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Resolver looks up a product by its decimal-string id. Satisfied by
// *catalog.Store.
type Resolver interface {
	ProductByID(id string) (*models.Product, error)
}

// Cart maps a product-id string to the chosen quantity. It lives in the
// cookie session and is passed into handlers as a plain value, so every
// operation works without a live session. Quantities are always ≥ 1;
// an update to zero or below removes the entry instead.
type Cart map[string]int

// Update is one entry of a bulk cart update, applied in request order.
type Update struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Line is one resolved cart row: the product, the chosen quantity and the
// line total at the catalog's current price.
type Line struct {
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

// Add puts quantity more of a product into the cart, on top of whatever is
// already there. Resolution against the catalog is deferred to read time.
func (c Cart) Add(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c[productID] += quantity
	return nil
}

// Remove drops the entry if present; absent ids are not an error.
func (c Cart) Remove(productID string) {
	delete(c, productID)
}

// SetQuantity overwrites the stored quantity. Zero or negative removes
// the entry, so a quantity below 1 can never be stored.
func (c Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c[productID] = quantity
}

// Apply runs a bulk update in order; later pairs for the same product win.
func (c Cart) Apply(updates []Update) {
	for _, u := range updates {
		c.SetQuantity(u.ProductID, u.Quantity)
	}
}

func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

// ProductIDs returns the stored ids sorted numerically where possible, so
// cart listings and checkout process entries in a stable order.
func (c Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseUint(ids[i], 10, 64)
		b, errB := strconv.ParseUint(ids[j], 10, 64)
		if errA != nil || errB != nil {
			return ids[i] < ids[j]
		}
		return a < b
	})
	return ids
}

// Lines resolves every entry against the catalog. Any entry that no longer
// resolves fails the whole call; stale ids are never silently skipped.
func (c Cart) Lines(r Resolver) ([]Line, error) {
	lines := make([]Line, 0, len(c))
	for _, productID := range c.ProductIDs() {
		product, err := r.ProductByID(productID)
		if err != nil {
			return nil, err
		}
		quantity := c[productID]
		lines = append(lines, Line{
			Product:  *product,
			Quantity: quantity,
			Total:    product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		})
	}
	return lines, nil
}

// Total is the sum of all line totals, zero for an empty cart.
func (c Cart) Total(r Resolver) (decimal.Decimal, error) {
	lines, err := c.Lines(r)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total)
	}
	return total, nil
}

// FromSession loads the session cart, or an empty one if none is stored yet.
func FromSession(sess sessions.Session) Cart {
	if c, ok := sess.Get(sessionKey).(Cart); ok {
		return c
	}
	return Cart{}
}

// Save writes the cart back into the session.
func (c Cart) Save(sess sessions.Session) error {
	sess.Set(sessionKey, c)
	return sess.Save()
}
