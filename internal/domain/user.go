package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis disponíveis (usuarios.papel).
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"papel"`
	Active       bool   `json:"ativo"`
}

type Claims struct {
	UserID   int
	Username string
	UserRole string
	jwt.RegisteredClaims
}
