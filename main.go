package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/amineammari/easyshop-api/models"
	"github.com/amineammari/easyshop-api/routes"
)

func main() {
	log.Println("✅ Starting EasyShop API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	if os.Getenv("SEED_DB") == "1" {
		if err := seedDatabase(db); err != nil {
			log.Fatalf("❌ Seed failed: %v", err)
		}
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection: Postgres when DATABASE_URL
// is set, otherwise a single-file SQLite database.
func initDatabase() *gorm.DB {
	config := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), config)
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = "data/easyshop.db"
	}
	if err := os.MkdirAll(filepath.Dir(dbFile), 0755); err != nil {
		log.Fatalf("❌ Failed to create data directory: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(dbFile+"?_foreign_keys=on"), config)
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	log.Printf("✅ SQLite database connected: %s", dbFile)
	return db
}
