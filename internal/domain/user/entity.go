package user

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleHR      Role = "HR"
	RoleManager Role = "MANAGER"
	RoleFinance Role = "FINANCE"
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}
