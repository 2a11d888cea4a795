package entity

import "time"

// Roles válidos para User.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa una cuenta del backend.
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // USER, ADMIN
	CreatedAt    time.Time
}
