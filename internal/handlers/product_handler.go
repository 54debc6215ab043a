package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vladimir-Maksimov/education/internal/catalog"
	"github.com/Vladimir-Maksimov/education/internal/db"
)

// GET / and GET /product_list
func ListProducts(c *gin.Context) {
	products, err := catalog.NewStore(db.DB).Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /product/:id/
func ProductDetail(c *gin.Context) {
	id := c.Param("id")

	product, err := catalog.NewStore(db.DB).ProductByID(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product not found with ID: %s", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
