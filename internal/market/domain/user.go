package domain

import "time"

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2 encoded
	FullName     string
	Role         string // client or admin
	CreatedAt    time.Time
}
