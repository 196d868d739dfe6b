package core

import "github.com/golang-jwt/jwt/v4"

type Claims struct {
	Subject string `json:"subject"`
	jwt.RegisteredClaims
}
