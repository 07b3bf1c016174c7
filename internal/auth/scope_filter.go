package auth

import (
	"strings"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// FilterScoped returns the records visible to identity under scope, in input
// order. The input slice is never modified.
//
//   - nil identity: nothing is visible.
//   - own: records owned by the identity, or tagged with its telegram id.
//   - showroom: records of the identity's showroom, plus untagged records.
//
// Blank tags count as untagged.
//   - all: every record.
//
// Unknown scopes see nothing.
func FilterScoped[T domain.Scoped](records []T, identity *domain.Identity, scope domain.DataScope) []T {
	if identity == nil {
		return []T{}
	}

	switch scope {
	case domain.ScopeOwn:
		return keep(records, func(tags domain.ScopeTags) bool {
			return matches(tags.OwnerID, &identity.ID) || matches(tags.TelegramCustomerID, identity.TelegramCustomerID)
		})
	case domain.ScopeShowroom:
		return keep(records, func(tags domain.ScopeTags) bool {
			return !present(tags.ShowroomCode) || matches(tags.ShowroomCode, identity.ShowroomCode)
		})
	case domain.ScopeAll:
		if records == nil {
			return []T{}
		}
		return records
	default:
		return []T{}
	}
}

// FilterCustomers applies the data scope filter to customer records.
func FilterCustomers(records []domain.Customer, identity *domain.Identity, scope domain.DataScope) []domain.Customer {
	return FilterScoped(records, identity, scope)
}

// FilterInteractions applies the data scope filter to interaction records.
func FilterInteractions(records []domain.Interaction, identity *domain.Identity, scope domain.DataScope) []domain.Interaction {
	return FilterScoped(records, identity, scope)
}

// Visible reports whether a single record passes the filter.
func Visible[T domain.Scoped](record T, identity *domain.Identity, scope domain.DataScope) bool {
	return len(FilterScoped([]T{record}, identity, scope)) == 1
}

func keep[T domain.Scoped](records []T, pred func(domain.ScopeTags) bool) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if pred(record.ScopeTags()) {
			out = append(out, record)
		}
	}
	return out
}

// matches is true only when both tags are present and equal.
func matches(recordTag, identityTag *string) bool {
	return present(recordTag) && present(identityTag) && *recordTag == *identityTag
}

// present treats a blank tag the same as a missing one.
func present(tag *string) bool {
	return tag != nil && strings.TrimSpace(*tag) != ""
}
