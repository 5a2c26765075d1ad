package models

import "time"

// UserRole represents the persisted role used for authorization checks.
// New registrations start without a role until an admin promotes them.
type UserRole string

const (
	RoleUnset      UserRole = ""
	RoleStudent    UserRole = "STUDENT"
	RoleInstructor UserRole = "INSTRUCTOR"
	RoleAdmin      UserRole = "ADMIN"
)

// Valid reports whether the role is one of the assignable values.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account. Email is the identity carried by tokens
// and is unique across the users table.
type User struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	PhotoURL  string    `db:"photo_url" json:"photo_url,omitempty"`
	Role      UserRole  `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CreateUserRequest is the registration payload. Registration is
// idempotent: posting an email that already exists is not an error.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// RoleCheckResponse answers the "does this account hold the role"
// endpoints. The admin field name is also used by the instructor check,
// matching the shape the frontend already consumes.
type RoleCheckResponse struct {
	Admin bool `json:"admin"`
}
