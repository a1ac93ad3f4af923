package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amineammari/easyshop-api/middleware"
	"github.com/amineammari/easyshop-api/models"
)

// POST /orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := models.CreateOrderFromCart(db, identity.UserID)
		if err != nil {
			if errors.Is(err, models.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			serverError(c, err, "Failed to create order")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order created",
			"order":   order,
		})
	}
}

// GET /orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := models.FindOrdersByUser(db, identity.UserID)
		if err != nil {
			serverError(c, err, "Failed to fetch orders")
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id must be a number"})
			return
		}

		order, err := models.FindOrderByID(db, uint(orderID))
		if err != nil {
			if errors.Is(err, models.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			serverError(c, err, "Failed to fetch order")
			return
		}

		if order.UserID != identity.UserID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

func serverError(c *gin.Context, err error, msg string) {
	log.Printf("order: %v", err)
	if os.Getenv("APP_ENV") == "development" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
