package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/showroom-crm/internal/domain"
)

// Sample account ids.
const (
	SampleSalesPersonID   = "1"
	SampleSalesPerson2ID  = "2"
	SampleSalesPerson3ID  = "3"
	SampleManagerID       = "4"
	SampleHeadOfficeID    = "5"
	SampleInactiveSalesID = "6"
)

func strPtr(v string) *string { return &v }

func sampleTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleAccounts returns the demo users, all sharing passwordHash.
func SampleAccounts(passwordHash string) []domain.Account {
	created := sampleTime("2024-01-01T08:00:00Z")
	return []domain.Account{
		{
			ID: SampleSalesPersonID, Name: "John Sales", Email: "john.sales@showroom.example",
			Role: domain.RoleSalesPerson, Status: domain.AccountStatusActive, Country: "AE",
			TelegramCustomerID: strPtr("sales_123"), ShowroomCode: strPtr("SR001"), CreatedAt: created,
		},
		{
			ID: SampleSalesPerson2ID, Name: "Ahmed Hassan", Email: "ahmed.hassan@showroom.example",
			Role: domain.RoleSalesPerson, Status: domain.AccountStatusActive, Country: "AE",
			TelegramCustomerID: strPtr("sales_456"), ShowroomCode: strPtr("SR001"), CreatedAt: created.Add(time.Minute),
		},
		{
			ID: SampleSalesPerson3ID, Name: "Omar Khalil", Email: "omar.khalil@showroom.example",
			Role: domain.RoleSalesPerson, Status: domain.AccountStatusActive, Country: "SA",
			TelegramCustomerID: strPtr("sales_789"), ShowroomCode: strPtr("SR002"), CreatedAt: created.Add(2 * time.Minute),
		},
		{
			ID: SampleManagerID, Name: "Jane Manager", Email: "jane.manager@showroom.example",
			Role: domain.RoleShowroomManager, Status: domain.AccountStatusActive, Country: "AE",
			ShowroomCode: strPtr("SR001"), CreatedAt: created.Add(3 * time.Minute),
		},
		{
			ID: SampleHeadOfficeID, Name: "Mike Executive", Email: "mike.executive@showroom.example",
			Role: domain.RoleHeadOffice, Status: domain.AccountStatusActive, Country: "AE",
			CreatedAt: created.Add(4 * time.Minute),
		},
		{
			ID: SampleInactiveSalesID, Name: "Layla Ahmed", Email: "layla.ahmed@showroom.example",
			Role: domain.RoleSalesPerson, Status: domain.AccountStatusInactive, Country: "SA",
			ShowroomCode: strPtr("SR002"), CreatedAt: created.Add(5 * time.Minute),
		},
	}
}

// SampleCustomers returns the demo customers. Customer 4 carries no scope tags.
func SampleCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID: "1", Name: "John Smith", Email: "john@example.com", Phone: "+1234567890",
			Status: domain.CustomerStatusPending, Priority: domain.PriorityHigh,
			OrderValue: decimal.NewFromInt(2500), CountryCode: "AE",
			LastInteractionAt: sampleTime("2024-01-15T10:30:00Z"),
			SalesPersonID:     strPtr(SampleSalesPersonID), TelegramCustomerID: strPtr("sales_123"), ShowroomCode: strPtr("SR001"),
			CreatedAt: sampleTime("2024-01-10T09:00:00Z"),
		},
		{
			ID: "2", Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "+1234567891",
			Status: domain.CustomerStatusInProgress, Priority: domain.PriorityMedium,
			OrderValue: decimal.NewFromInt(1200), CountryCode: "AE",
			LastInteractionAt: sampleTime("2024-01-14T09:15:00Z"),
			SalesPersonID:     strPtr(SampleSalesPerson2ID), TelegramCustomerID: strPtr("sales_456"), ShowroomCode: strPtr("SR001"),
			CreatedAt: sampleTime("2024-01-10T10:00:00Z"),
		},
		{
			ID: "3", Name: "Mike Wilson", Email: "mike@example.com", Phone: "+1234567892",
			Status: domain.CustomerStatusEscalated, Priority: domain.PriorityHigh,
			OrderValue: decimal.NewFromInt(5800), CountryCode: "SA",
			LastInteractionAt: sampleTime("2024-01-12T16:45:00Z"),
			SalesPersonID:     strPtr(SampleSalesPerson3ID), TelegramCustomerID: strPtr("sales_789"), ShowroomCode: strPtr("SR002"),
			CreatedAt: sampleTime("2024-01-10T11:00:00Z"),
		},
		{
			ID: "4", Name: "Lisa Brown", Email: "lisa@example.com", Phone: "+1234567893",
			Status: domain.CustomerStatusCompleted, Priority: domain.PriorityLow,
			OrderValue: decimal.RequireFromString("950.50"), CountryCode: "KW",
			LastInteractionAt: sampleTime("2024-01-13T14:00:00Z"),
			CreatedAt:         sampleTime("2024-01-10T12:00:00Z"),
		},
	}
}

// SampleInteractions returns the demo interactions.
func SampleInteractions() []domain.Interaction {
	followUp1 := sampleTime("2024-01-17T09:00:00Z")
	followUp2 := sampleTime("2024-01-16T09:00:00Z")
	return []domain.Interaction{
		{
			ID: "1", CustomerID: "1", CustomerName: "John Smith", Type: domain.InteractionTypeCall,
			Message:  "Initial contact regarding product inquiry. Customer interested in premium package.",
			Status:   domain.InteractionStatusCompleted,
			Priority: domain.PriorityHigh,
			AssignedTo: strPtr(SampleSalesPersonID), AssignedToName: "John Sales", AssignedToRole: domain.RoleSalesPerson,
			NextAction:      "Follow up in 2 days",
			EscalationLevel: domain.LevelSalesPerson,
			AISummary:       "Customer shows strong interest in premium package. Discussed pricing and features. Ready for follow-up call.",
			FollowUpDate:    &followUp1,
			TelegramCustomerID: strPtr("sales_123"), ShowroomCode: strPtr("SR001"),
			OccurredAt: sampleTime("2024-01-15T10:30:00Z"),
		},
		{
			ID: "2", CustomerID: "2", CustomerName: "Sarah Johnson", Type: domain.InteractionTypeEmail,
			Message:  "Sent product catalog and pricing information. Awaiting customer response.",
			Status:   domain.InteractionStatusPending,
			Priority: domain.PriorityMedium,
			AssignedTo: strPtr(SampleSalesPersonID), AssignedToName: "John Sales", AssignedToRole: domain.RoleSalesPerson,
			NextAction:      "Call if no response by tomorrow",
			EscalationLevel: domain.LevelSalesPerson,
			FollowUpDate:    &followUp2,
			TelegramCustomerID: strPtr("sales_456"), ShowroomCode: strPtr("SR001"),
			OccurredAt: sampleTime("2024-01-15T09:15:00Z"),
		},
		{
			ID: "3", CustomerID: "3", CustomerName: "Mike Wilson", Type: domain.InteractionTypeMessage,
			Message:  "Customer complaint about delivery delay. Escalated to showroom manager.",
			Status:   domain.InteractionStatusEscalated,
			Priority: domain.PriorityHigh,
			AssignedTo: strPtr(SampleManagerID), AssignedToName: "Jane Manager", AssignedToRole: domain.RoleShowroomManager,
			NextAction:      "Manager to contact within 24 hours",
			EscalationLevel: domain.LevelShowroomManager,
			AISummary:       "Customer complaint regarding delivery delay. Issue escalated to management level for resolution.",
			TelegramCustomerID: strPtr("sales_789"), ShowroomCode: strPtr("SR002"),
			OccurredAt: sampleTime("2024-01-14T16:45:00Z"),
		},
	}
}

// SampleEscalations returns the demo escalation cases.
func SampleEscalations() []domain.Escalation {
	return []domain.Escalation{
		{
			ID: "ESC-001", CustomerName: "Ahmed Al-Mansouri", OrderID: "ORD-2024-001",
			Issue:         "Product delivery delay",
			Description:   "Customer is complaining about delayed delivery of electronics order. Expected delivery was 3 days ago.",
			Priority:      domain.PriorityHigh,
			Status:        domain.EscalationStatusPending,
			EscalatedFrom: domain.LevelSalesPerson, EscalatedTo: domain.LevelShowroomManager,
			EscalatedBy: strPtr(SampleSalesPersonID), AssignedTo: "Jane Manager",
			Showroom: "Dubai Mall", ShowroomCode: strPtr("SR001"), Country: "UAE",
			CreatedAt: sampleTime("2024-01-15T10:30:00Z"), UpdatedAt: sampleTime("2024-01-15T14:20:00Z"),
		},
		{
			ID: "ESC-002", CustomerName: "Sarah Johnson", OrderID: "ORD-2024-002",
			Issue:         "Product quality concern",
			Description:   "Customer received damaged product and requesting replacement or refund.",
			Priority:      domain.PriorityMedium,
			Status:        domain.EscalationStatusInProgress,
			EscalatedFrom: domain.LevelShowroomManager, EscalatedTo: domain.LevelHeadOffice,
			EscalatedBy: strPtr(SampleManagerID), AssignedTo: "Mike Executive",
			Showroom: "Riyadh Center", ShowroomCode: strPtr("SR002"), Country: "Saudi Arabia",
			CreatedAt: sampleTime("2024-01-14T09:15:00Z"), UpdatedAt: sampleTime("2024-01-15T11:45:00Z"),
		},
		{
			ID: "ESC-003", CustomerName: "Mohammed Al-Rashid", OrderID: "ORD-2024-003",
			Issue:         "Payment processing error",
			Description:   "Payment was charged twice for the same order. Customer requesting immediate refund.",
			Priority:      domain.PriorityUrgent,
			Status:        domain.EscalationStatusResolved,
			EscalatedFrom: domain.LevelSalesPerson, EscalatedTo: domain.LevelHeadOffice,
			AssignedTo: "Mike Executive",
			Showroom:   "Kuwait City", Country: "Kuwait",
			CreatedAt: sampleTime("2024-01-13T16:20:00Z"), UpdatedAt: sampleTime("2024-01-14T10:30:00Z"),
		},
	}
}
