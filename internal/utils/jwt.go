package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tourism_backend/internal/models"
)

// GenerateJWT signe un token HS256 de 7 jours : sub = id utilisateur,
// claim role pour les contrôles d'accès.
func GenerateJWT(user models.User, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
