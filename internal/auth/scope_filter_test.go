package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

func ptr(s string) *string { return &s }

func ids(records []domain.Customer) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func sampleCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: "1", SalesPersonID: ptr("1"), TelegramCustomerID: ptr("sales_123"), ShowroomCode: ptr("SR001")},
		{ID: "2", SalesPersonID: ptr("2"), ShowroomCode: ptr("SR001")},
		{ID: "3", TelegramCustomerID: ptr("sales_456"), ShowroomCode: ptr("SR002")},
		{ID: "4"},
	}
}

func TestFilterOwnMatchesByOwnerOrChannel(t *testing.T) {
	identity := &domain.Identity{ID: "2", Role: domain.RoleSalesPerson, TelegramCustomerID: ptr("sales_456")}
	records := []domain.Customer{
		{ID: "1", SalesPersonID: ptr("1"), TelegramCustomerID: ptr("sales_123")},
		{ID: "2", SalesPersonID: ptr("2")},
		{ID: "3", TelegramCustomerID: ptr("sales_456")},
	}

	assert.Equal(t, []string{"2", "3"}, ids(FilterCustomers(records, identity, domain.ScopeOwn)))
}

func TestFilterOwnIgnoresUntaggedIdentity(t *testing.T) {
	identity := &domain.Identity{ID: "9", Role: domain.RoleSalesPerson}
	records := []domain.Customer{{ID: "1"}, {ID: "2", TelegramCustomerID: ptr("sales_123")}}

	assert.Empty(t, FilterCustomers(records, identity, domain.ScopeOwn))
}

func TestFilterShowroomIncludesUntagged(t *testing.T) {
	identity := &domain.Identity{ID: "4", Role: domain.RoleShowroomManager, ShowroomCode: ptr("SR001")}
	records := []domain.Customer{
		{ID: "a", ShowroomCode: ptr("SR001")},
		{ID: "b", ShowroomCode: ptr("SR002")},
		{ID: "c"},
	}

	assert.Equal(t, []string{"a", "c"}, ids(FilterCustomers(records, identity, domain.ScopeShowroom)))
}

func TestFilterShowroomWithoutIdentityCode(t *testing.T) {
	identity := &domain.Identity{ID: "4", Role: domain.RoleShowroomManager}

	assert.Equal(t, []string{"4"}, ids(FilterCustomers(sampleCustomers(), identity, domain.ScopeShowroom)))
}

func TestFilterAllIsIdentity(t *testing.T) {
	identity := &domain.Identity{ID: "5", Role: domain.RoleHeadOffice}
	records := sampleCustomers()

	assert.Equal(t, records, FilterCustomers(records, identity, domain.ScopeAll))
}

func TestFilterNilIdentitySeesNothing(t *testing.T) {
	for _, scope := range []domain.DataScope{domain.ScopeOwn, domain.ScopeShowroom, domain.ScopeAll, "galaxy"} {
		result := FilterCustomers(sampleCustomers(), nil, scope)
		assert.NotNil(t, result)
		assert.Empty(t, result, "scope %s", scope)
	}
}

func TestFilterUnknownScopeSeesNothing(t *testing.T) {
	identity := &domain.Identity{ID: "1", Role: domain.RoleSalesPerson}

	assert.Empty(t, FilterCustomers(sampleCustomers(), identity, "region"))
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	identity := &domain.Identity{ID: "4", ShowroomCode: ptr("SR001")}
	records := []domain.Customer{{ID: "z"}, {ID: "y", ShowroomCode: ptr("SR001")}, {ID: "x", ShowroomCode: ptr("SR009")}, {ID: "w"}}
	before := append([]domain.Customer{}, records...)

	assert.Equal(t, []string{"z", "y", "w"}, ids(FilterCustomers(records, identity, domain.ScopeShowroom)))
	assert.Equal(t, before, records)
}

func TestFilterInteractionsUsesAssignee(t *testing.T) {
	identity := &domain.Identity{ID: "1", Role: domain.RoleSalesPerson, TelegramCustomerID: ptr("sales_123")}
	records := []domain.Interaction{
		{ID: "1", AssignedTo: ptr("1")},
		{ID: "2", AssignedTo: ptr("7"), TelegramCustomerID: ptr("sales_123")},
		{ID: "3", AssignedTo: ptr("7")},
	}

	result := FilterInteractions(records, identity, domain.ScopeOwn)
	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "2", result[1].ID)
}

func TestVisible(t *testing.T) {
	identity := &domain.Identity{ID: "4", ShowroomCode: ptr("SR001")}
	escalation := domain.Escalation{ID: "ESC-1", ShowroomCode: ptr("SR002")}

	assert.False(t, Visible(escalation, identity, domain.ScopeShowroom))
	assert.True(t, Visible(escalation, identity, domain.ScopeAll))
	assert.False(t, Visible(escalation, nil, domain.ScopeAll))
}

func TestFilterTreatsBlankTagsAsMissing(t *testing.T) {
	manager := &domain.Identity{ID: "4", Role: domain.RoleShowroomManager, ShowroomCode: ptr("SR001")}
	accounts := []domain.Account{
		{ID: "a1", ShowroomCode: ptr("")},
		{ID: "a2"},
		{ID: "a3", ShowroomCode: ptr("SR002")},
	}

	result := FilterScoped(accounts, manager, domain.ScopeShowroom)
	require.Len(t, result, 2)
	assert.Equal(t, "a1", result[0].ID)
	assert.Equal(t, "a2", result[1].ID)

	blankChannel := &domain.Identity{ID: "9", Role: domain.RoleSalesPerson, TelegramCustomerID: ptr(" ")}
	records := []domain.Customer{{ID: "1", TelegramCustomerID: ptr(" ")}, {ID: "2", TelegramCustomerID: ptr("")}}
	assert.Empty(t, FilterCustomers(records, blankChannel, domain.ScopeOwn))

	blankShowroom := &domain.Identity{ID: "4", ShowroomCode: ptr("")}
	tagged := []domain.Customer{{ID: "1", ShowroomCode: ptr("SR001")}, {ID: "2", ShowroomCode: ptr("")}}
	assert.Equal(t, []string{"2"}, ids(FilterCustomers(tagged, blankShowroom, domain.ScopeShowroom)))
}

func TestFilterAllReturnsEmptySliceForNilInput(t *testing.T) {
	identity := &domain.Identity{ID: "5", Role: domain.RoleHeadOffice}

	result := FilterCustomers(nil, identity, domain.ScopeAll)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
