package entity

import (
	"regexp"
	"time"
)

// Valid roles for User. Three tiers: super_admin > admin > user.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleUser
}

// AdminRole reports whether r carries administrative privileges.
func AdminRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the basic email pattern.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// User represents an account of the system.
type User struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string // bcrypt hash, never plaintext after persisting
	Role             string // super_admin, admin, user
	ResetToken       string // empty unless a password reset is pending
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UserPatch names the fields a partial update may set; nil means untouched.
type UserPatch struct {
	Name         *string
	Email        *string
	Role         *string
	PasswordHash *string
}

// UserFilter narrows user listings. Zero values are no-ops.
type UserFilter struct {
	Role   string
	Search string // substring on name/email
}
