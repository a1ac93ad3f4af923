package authControllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amineammari/easyshop-api/auth"
	"github.com/amineammari/easyshop-api/models"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordInput struct {
	Email string `json:"email" binding:"required"`
}

// publicUser is the identity returned to clients, without the hash.
func publicUser(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required (password: 6 characters minimum)"})
			return
		}

		user, err := models.CreateUser(db, input.Name, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, models.ErrDuplicateEmail) {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
				return
			}
			serverError(c, err, "Failed to register user")
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			serverError(c, err, "Failed to issue token")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created",
			"token":   token,
			"user":    publicUser(user),
		})
	}
}

// POST /auth/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		// Same response for an unknown email and a wrong password, so
		// login cannot be used to probe which emails exist.
		user, err := models.FindUserByEmail(db, input.Email)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
				return
			}
			serverError(c, err, "Failed to log in")
			return
		}
		if !models.VerifyPassword(user, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}

		token, err := auth.IssueToken(user.ID, user.Email)
		if err != nil {
			serverError(c, err, "Failed to issue token")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Logged in",
			"token":   token,
			"user":    publicUser(user),
		})
	}
}

// POST /auth/logout
// Tokens are not tracked server-side, so logout is advisory only.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out. Discard the token client-side."})
	}
}

// POST /auth/reset-password
// Stub: the response never reveals whether the email is registered.
func ResetPassword(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ResetPasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		if _, err := models.FindUserByEmail(db, input.Email); err == nil {
			// No mail delivery in this demo; the ticket reference only
			// shows up in the server log.
			log.Printf("password reset requested for %s (ticket %s)", input.Email, uuid.NewString())
		}

		c.JSON(http.StatusOK, gin.H{"message": "If this email exists, a reset link has been sent."})
	}
}

func serverError(c *gin.Context, err error, msg string) {
	log.Printf("auth: %v", err)
	if os.Getenv("APP_ENV") == "development" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg, "detail": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
