package cartControllers

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

type AddToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Qty       int  `json:"qty" binding:"omitempty,min=1"`
}

type UpdateCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Qty       *int `json:"qty" binding:"required,gte=0"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		cart, err := models.GetCart(db, identity.UserID)
		if err != nil {
			serverError(c, err, "Failed to fetch cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required and qty must be at least 1"})
			return
		}
		qty := input.Qty
		if qty == 0 {
			qty = 1
		}

		cart, err := models.AddCartItem(db, identity.UserID, input.ProductID, qty)
		if err != nil {
			if errors.Is(err, models.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			serverError(c, err, "Failed to add item to cart")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product added to cart",
			"items":   cart.Items,
			"total":   cart.Total,
		})
	}
}

// PUT /cart/update
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and qty are required, qty must not be negative"})
			return
		}

		cart, err := models.UpdateCartQuantity(db, identity.UserID, input.ProductID, *input.Qty)
		if err != nil {
			serverError(c, err, "Failed to update cart")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Cart updated",
			"items":   cart.Items,
			"total":   cart.Total,
		})
	}
}

// DELETE /cart/remove/:productId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId must be a number"})
			return
		}

		cart, err := models.RemoveCartItem(db, identity.UserID, uint(productID))
		if err != nil {
			serverError(c, err, "Failed to remove item from cart")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product removed from cart",
			"items":   cart.Items,
			"total":   cart.Total,
		})
	}
}

func serverError(c *gin.Context, err error, msg string) {
	log.Printf("cart: %v", err)
	if os.Getenv("APP_ENV") == "development" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
