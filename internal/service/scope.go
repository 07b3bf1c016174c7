package service

import (
	"github.com/spec-kit/showroom-crm/internal/auth"
	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/observability"
)

// scoped narrows records to the principal's data scope and records the
// decision. A nil principal sees nothing.
func scoped[T domain.Scoped](metrics *observability.Metrics, collection string, records []T, principal *auth.Principal) []T {
	if principal == nil {
		out := auth.FilterScoped(records, nil, domain.ScopeOwn)
		metrics.RecordScopeFilter(collection, "none", len(records), len(out))
		return out
	}
	scope := principal.Permissions.DataScope
	out := auth.FilterScoped(records, &principal.Identity, scope)
	metrics.RecordScopeFilter(collection, string(scope), len(records), len(out))
	return out
}

// visible reports whether a single record is within the principal's scope.
func visible[T domain.Scoped](record T, principal *auth.Principal) bool {
	if principal == nil {
		return false
	}
	return auth.Visible(record, &principal.Identity, principal.Permissions.DataScope)
}
