// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Reader Roles

// UserRole represents the authorization level granted by the identity provider.
type UserRole string

const (
	// Unrestricted access: the only writers of books and deadlines
	RoleAdmin UserRole = "admin"

	// Default role for authenticated readers
	RoleReader UserRole = "reader"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleReader:
		return 10
	default:
		return 0
	}
}
