package auth

import "github.com/spec-kit/showroom-crm/internal/domain"

// ResolvePermissions derives the permission set of the given identity.
// A nil identity resolves to RestrictivePermissions.
func ResolvePermissions(identity *domain.Identity) domain.PermissionSet {
	if identity == nil {
		return RestrictivePermissions()
	}
	return PolicyFor(identity.Role)
}
