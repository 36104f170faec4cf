// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole is the authorisation level carried in [AuthClaims].
type UserRole string

const (
	// Can curate the catalogue (genres, credits, runtimes).
	RoleAdmin UserRole = "admin"

	// Default role for registered users.
	RoleMember UserRole = "member"
)

// AtLeast reports whether r meets or exceeds target.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
