package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcryptCost keeps a single hash in the tens-of-milliseconds range.
const bcryptCost = 10

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`

	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// CreateUser registers a new user with a bcrypt-hashed password.
// The email must not already be registered (exact, case-sensitive match).
func CreateUser(db *gorm.DB, name, email, password string) (*User, error) {
	var existing User
	err := db.Select("id").Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := User{Name: name, Email: email, Password: string(hash)}
	if err := db.Create(&user).Error; err != nil {
		// The unique index is the backstop for a concurrent registration
		// racing past the lookup above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uint) (*User, error) {
	var user User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifyPassword checks a candidate password against the stored hash.
func VerifyPassword(user *User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(candidate)) == nil
}
