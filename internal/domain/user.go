package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleEngineer   Role = "ENGINEER"
	RoleTechnician Role = "TECHNICIAN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEngineer, RoleTechnician:
		return true
	}
	return false
}

// User is an account that can sign in to the tracker.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	FullName     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated caller decoded from a token.
type Principal struct {
	ID   string
	Role Role
}
