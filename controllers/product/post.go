package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/amineammari/easyshop-api/models"
)

type ProductInput struct {
	Title       string   `json:"title" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required and price must not be negative"})
			return
		}

		product := models.Product{
			Title:       input.Title,
			Price:       *input.Price,
			Description: input.Description,
			ImageURL:    input.ImageURL,
		}
		if err := models.CreateProduct(db, &product); err != nil {
			serverError(c, err, "Failed to create product")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
