package dto

import (
	"time"

	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the token together with the caller's view of the app.
type LoginResponse struct {
	Token       string                `json:"token"`
	ExpiresAt   time.Time             `json:"expires_at"`
	User        domain.Identity       `json:"user"`
	Permissions domain.PermissionSet  `json:"permissions"`
	Navigation  []auth.NavigationItem `json:"navigation"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	User        domain.Identity       `json:"user"`
	Permissions domain.PermissionSet  `json:"permissions"`
	Navigation  []auth.NavigationItem `json:"navigation"`
}

// PolicyEntry is one row of the role policy table.
type PolicyEntry struct {
	Role        domain.Role          `json:"role"`
	DisplayName string               `json:"display_name"`
	Permissions domain.PermissionSet `json:"permissions"`
}

// NavigationFor returns the sidebar for the permission set.
func NavigationFor(perms domain.PermissionSet) []auth.NavigationItem {
	return auth.Navigation(perms)
}

// PolicyEntries lists the policy table in role order.
func PolicyEntries() []PolicyEntry {
	table := auth.PolicyTable()
	out := make([]PolicyEntry, 0, len(table))
	for _, role := range domain.Roles() {
		out = append(out, PolicyEntry{Role: role, DisplayName: role.DisplayName(), Permissions: table[role]})
	}
	return out
}
