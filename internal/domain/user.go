package domain

import "time"

// User is an application account managed from the admin screen.
// PasswordHash holds a bcrypt digest and never leaves the service.
type User struct {
	ID           uint
	Username     string
	FullName     string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

const (
	UserRoleAdmin    = "admin"
	UserRoleEmployee = "employee"
)

func IsValidUserRole(role string) bool {
	return role == UserRoleAdmin || role == UserRoleEmployee
}
