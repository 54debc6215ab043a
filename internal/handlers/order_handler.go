package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/Vladimir-Maksimov/education/internal/cart"
	"github.com/Vladimir-Maksimov/education/internal/db"
	"github.com/Vladimir-Maksimov/education/internal/models"
	"github.com/Vladimir-Maksimov/education/internal/notifier"
	"github.com/Vladimir-Maksimov/education/internal/orders"
)

// GET /create_order
func ShowOrderForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"full_name", "email", "address", "postal_code", "city"},
	})
}

// POST /create_order
func CreateOrder(c *gin.Context) {
	var req orders.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := sessions.Default(c)
	userCart := cart.FromSession(sess)

	order, err := orders.PlaceOrder(db.DB, req, userCart)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, orders.ErrProductNotFound):
			// Cart and session stay as they were so the user can fix the
			// cart and retry.
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, orders.ErrNumberConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "please retry your order"})
		default:
			log.Error().Err(err).Msg("order creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order"})
		}
		return
	}

	// PlaceOrder cleared the cart; persist the now-empty cart to the session.
	if err := userCart.Save(sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save session"})
		return
	}

	go func(order models.Order) {
		if err := notifier.SendOrderConfirmation(context.Background(), order.Email, order.FullName, order.OrderNumber, order.TotalCost()); err != nil {
			log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("confirmation email not sent")
		}
	}(*order)

	c.JSON(http.StatusCreated, gin.H{"message": "order created successfully", "order": order})
}

// GET /order_success/:order_id
func OrderSuccess(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %s", c.Param("order_id"))})
		return
	}

	var order models.Order
	if err := db.DB.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order not found with ID: %d", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order, "total": order.TotalCost()})
}
