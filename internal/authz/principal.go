// Package authz carries the per-request permission profile. The profile is
// resolved once from the JWT claims by the auth middleware; services receive it
// explicitly instead of re-reading role strings inline.
package authz

import "github.com/OliverHuron/SICAII/internal/model"

// Principal identifies the authenticated caller and their role.
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the administrator role.
func (p Principal) IsAdmin() bool { return p.Role == model.RoleAdmin }

// Owns reports whether the caller is the owner of a row keyed by userID.
func (p Principal) Owns(userID uint) bool { return p.UserID == userID }
