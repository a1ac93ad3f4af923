package models

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}, &Product{}, &CartItem{}, &Order{}, &OrderItem{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *User {
	t.Helper()
	user, err := CreateUser(db, "Test User", email, "Password1!")
	require.NoError(t, err)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, title string, price float64) *Product {
	t.Helper()
	product := Product{Title: title, Price: price, Description: "test product"}
	require.NoError(t, CreateProduct(db, &product))
	return &product
}
