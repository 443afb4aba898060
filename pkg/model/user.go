package model

import "fmt"

// Role is the access tier gating which operations a user may invoke.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Display returns the human-readable role name used in console output.
func (r Role) Display() string {
	switch r {
	case RoleGuest:
		return "Guest"
	case RoleUser:
		return "User"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}

// User is a fixed account seeded at startup. Users are immutable at runtime.
type User struct {
	ID   int    `json:"id" validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
	Role Role   `json:"role" validate:"required,oneof=guest user admin"`
}

func (u User) String() string {
	return fmt.Sprintf("[%d] %s (%s)", u.ID, u.Name, u.Role.Display())
}
