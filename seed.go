package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/amineammari/easyshop-api/models"
)

// seedDatabase loads the demo catalog and accounts. It only runs against an
// empty products table so restarting with SEED_DB=1 never duplicates rows.
func seedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("⏭️ Seed skipped: products already present")
		return nil
	}

	products := []models.Product{
		{Title: "Casque Audio", Price: 129.00, Description: "Casque bluetooth circum-aural"},
		{Title: "Clavier Mécanique", Price: 89.00, Description: "Clavier AZERTY mécanique 87 touches"},
		{Title: "Souris Gaming", Price: 49.00, Description: "Souris optique 16000 DPI"},
	}
	for i := range products {
		if err := models.CreateProduct(db, &products[i]); err != nil {
			return err
		}
	}

	demoUsers := []struct {
		name, email, password string
	}{
		{"Alice Dupont", "alice@example.com", "Password1!"},
		{"Bob Martin", "bob@example.com", "Password2!"},
		{"Charlie Roy", "charlie@example.com", "Password3!"},
	}
	users := make(map[string]*models.User, len(demoUsers))
	for _, du := range demoUsers {
		user, err := models.CreateUser(db, du.name, du.email, du.password)
		if err != nil {
			return err
		}
		users[du.email] = user
	}

	// Bob starts with one headset, Alice with two mice in their carts.
	if _, err := models.AddCartItem(db, users["bob@example.com"].ID, products[0].ID, 1); err != nil {
		return err
	}
	if _, err := models.AddCartItem(db, users["alice@example.com"].ID, products[2].ID, 2); err != nil {
		return err
	}

	log.Printf("✅ Seeded %d products and %d users", len(products), len(demoUsers))
	return nil
}
