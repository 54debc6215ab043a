package cart_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Vladimir-Maksimov/education/internal/cart"
	"github.com/Vladimir-Maksimov/education/internal/catalog"
	"github.com/Vladimir-Maksimov/education/internal/models"
)

// stubResolver serves products from a map, standing in for the catalog store.
type stubResolver map[string]models.Product

func (s stubResolver) ProductByID(id string) (*models.Product, error) {
	p, ok := s[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", catalog.ErrNotFound, id)
	}
	return &p, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCartAdd(t *testing.T) {
	c := cart.Cart{}

	t.Run("inserts a new entry", func(t *testing.T) {
		err := c.Add("1", 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, c["1"])
	})

	t.Run("increments an existing entry", func(t *testing.T) {
		err := c.Add("1", 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, c["1"])
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		assert.ErrorIs(t, c.Add("2", 0), cart.ErrInvalidQuantity)
		assert.ErrorIs(t, c.Add("2", -4), cart.ErrInvalidQuantity)
		assert.NotContains(t, c, "2")
	})
}

func TestCartRemove(t *testing.T) {
	c := cart.Cart{"1": 2}

	c.Remove("1")
	assert.NotContains(t, c, "1")

	// Removing an absent id is a no-op, not an error.
	c.Remove("99")
	assert.Empty(t, c)
}

func TestCartSetQuantity(t *testing.T) {
	c := cart.Cart{"1": 2}

	t.Run("overwrites instead of adding", func(t *testing.T) {
		c.SetQuantity("1", 7)
		assert.Equal(t, 7, c["1"])
	})

	t.Run("zero or negative removes the entry", func(t *testing.T) {
		c.SetQuantity("1", 0)
		assert.NotContains(t, c, "1")

		c.SetQuantity("1", 3)
		c.SetQuantity("1", -5)
		assert.NotContains(t, c, "1")
	})
}

// No sequence of operations may leave an entry with quantity below 1.
func TestCartNeverStoresNonPositiveQuantity(t *testing.T) {
	c := cart.Cart{}

	_ = c.Add("1", 2)
	_ = c.Add("2", 1)
	c.SetQuantity("1", 0)
	_ = c.Add("1", 4)
	c.SetQuantity("2", -1)
	_ = c.Add("3", 1)
	c.Remove("3")
	c.Apply([]cart.Update{
		{ProductID: "4", Quantity: 2},
		{ProductID: "4", Quantity: 0},
		{ProductID: "5", Quantity: -3},
	})

	for id, qty := range c {
		assert.GreaterOrEqual(t, qty, 1, "entry %s", id)
	}
}

func TestCartApply(t *testing.T) {
	c := cart.Cart{"1": 2, "2": 1}

	t.Run("applies pairs in order, last one wins", func(t *testing.T) {
		c.Apply([]cart.Update{
			{ProductID: "1", Quantity: 5},
			{ProductID: "3", Quantity: 2},
			{ProductID: "1", Quantity: 9},
		})
		assert.Equal(t, 9, c["1"])
		assert.Equal(t, 2, c["3"])
	})

	t.Run("non-positive quantity removes", func(t *testing.T) {
		c.Apply([]cart.Update{{ProductID: "2", Quantity: 0}})
		assert.NotContains(t, c, "2")
	})
}

func TestCartLines(t *testing.T) {
	resolver := stubResolver{
		"1": {ID: 1, Name: "Product A", Price: price("10.00")},
		"2": {ID: 2, Name: "Product B", Price: price("5.00")},
	}

	t.Run("resolves every entry with line totals", func(t *testing.T) {
		c := cart.Cart{"1": 2, "2": 1}

		lines, err := c.Lines(resolver)
		assert.NoError(t, err)
		assert.Len(t, lines, 2)
		assert.Equal(t, "Product A", lines[0].Product.Name)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.True(t, lines[0].Total.Equal(price("20.00")), "got %s", lines[0].Total)
		assert.True(t, lines[1].Total.Equal(price("5.00")), "got %s", lines[1].Total)
	})

	t.Run("fails hard on an unresolvable entry", func(t *testing.T) {
		c := cart.Cart{"1": 2, "99": 1}

		_, err := c.Lines(resolver)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCartTotal(t *testing.T) {
	resolver := stubResolver{
		"1": {ID: 1, Price: price("10.00")},
		"2": {ID: 2, Price: price("5.00")},
	}

	t.Run("sums line totals", func(t *testing.T) {
		c := cart.Cart{"1": 2, "2": 1}

		total, err := c.Total(resolver)
		assert.NoError(t, err)
		assert.True(t, total.Equal(price("25.00")), "got %s", total)
	})

	t.Run("empty cart totals zero", func(t *testing.T) {
		total, err := cart.Cart{}.Total(resolver)
		assert.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("propagates resolution failures", func(t *testing.T) {
		c := cart.Cart{"99": 1}

		_, err := c.Total(resolver)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCartClear(t *testing.T) {
	c := cart.Cart{"1": 2, "2": 1}
	c.Clear()
	assert.Empty(t, c)
}
