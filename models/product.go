package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func CreateProduct(db *gorm.DB, p *Product) error {
	return db.Create(p).Error
}

func FindProductByID(db *gorm.DB, id uint) (*Product, error) {
	var product Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func FindAllProducts(db *gorm.DB) ([]Product, error) {
	var products []Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func UpdateProduct(db *gorm.DB, id uint, updates *Product) (*Product, error) {
	product, err := FindProductByID(db, id)
	if err != nil {
		return nil, err
	}
	fields := map[string]interface{}{
		"title":       updates.Title,
		"price":       updates.Price,
		"description": updates.Description,
		"image_url":   updates.ImageURL,
	}
	if err := db.Model(product).Updates(fields).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product. Dependent cart and order rows go with it
// through the store's cascade policy.
func DeleteProduct(db *gorm.DB, id uint) error {
	result := db.Delete(&Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}
