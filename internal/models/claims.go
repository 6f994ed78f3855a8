package models

import (
	"github.com/golang-jwt/jwt"
)

// Claims is the payload of the bearer tokens issued by the external auth
// provider. Only user_id and email are consumed here.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.StandardClaims
}
