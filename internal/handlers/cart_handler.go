package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Vladimir-Maksimov/education/internal/cart"
	"github.com/Vladimir-Maksimov/education/internal/catalog"
	"github.com/Vladimir-Maksimov/education/internal/db"
)

// POST /add_to_cart/:product_id/ with form field "quantity" (default 1)
func AddToCart(c *gin.Context) {
	productID := c.Param("product_id")

	quantity := 1
	if raw := c.PostForm("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
			return
		}
		quantity = parsed
	}

	// Resolve up front so a bad id fails here with a 404 instead of
	// surfacing later on the cart page.
	if _, err := catalog.NewStore(db.DB).ProductByID(productID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product not found with ID: %s", productID)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	sess := sessions.Default(c)
	userCart := cart.FromSession(sess)
	if err := userCart.Add(productID, quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := userCart.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

// POST /remove_from_cart/:product_id
func RemoveFromCart(c *gin.Context) {
	productID := c.Param("product_id")

	sess := sessions.Default(c)
	userCart := cart.FromSession(sess)
	userCart.Remove(productID)
	if err := userCart.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

// GET /cart
func ViewCart(c *gin.Context) {
	userCart := cart.FromSession(sessions.Default(c))

	store := catalog.NewStore(db.DB)
	lines, err := userCart.Lines(store)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	total, err := userCart.Total(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": lines, "total_price": total})
}

// POST /cart — bulk update, pairs applied in order, last one wins
func UpdateCart(c *gin.Context) {
	var updates []cart.Update
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := sessions.Default(c)
	userCart := cart.FromSession(sess)
	userCart.Apply(updates)
	if err := userCart.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}
