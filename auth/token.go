package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the validity window encoded into every session token.
// There is no server-side revocation; logout is a client-side discard.
const TokenTTL = 7 * 24 * time.Hour

var (
	ErrMissingToken = errors.New("missing token")
	ErrExpiredToken = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the caller extracted from a session token. It is threaded
// explicitly through handlers instead of living on an ambient request object.
type Identity struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

func secret() []byte {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		s = "changeme_super_secret_key_for_jwt_tokens"
	}
	return []byte(s)
}

// IssueToken signs a session token for the given user.
func IssueToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret())
}

// ParseToken validates a token and decodes the identity it carries.
func ParseToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret(), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: uint(userID), Email: email}, nil
}
