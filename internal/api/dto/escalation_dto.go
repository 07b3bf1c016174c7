package dto

import (
	"strconv"
	"time"

	"github.com/spec-kit/showroom-crm/internal/domain"
	"github.com/spec-kit/showroom-crm/internal/service"
)

// UpdateEscalationStatusRequest payload.
type UpdateEscalationStatusRequest struct {
	Status domain.EscalationStatus `json:"status" validate:"required,oneof=pending in-progress resolved"`
}

// EscalationResponse represents an escalation case.
type EscalationResponse struct {
	ID            string                  `json:"id"`
	InteractionID *string                 `json:"interaction_id,omitempty"`
	CustomerName  string                  `json:"customer_name"`
	OrderID       string                  `json:"order_id"`
	Issue         string                  `json:"issue"`
	Description   string                  `json:"description"`
	Priority      domain.Priority         `json:"priority"`
	Status        domain.EscalationStatus `json:"status"`
	EscalatedFrom string                  `json:"escalated_from"`
	EscalatedTo   string                  `json:"escalated_to"`
	AssignedTo    string                  `json:"assigned_to"`
	Showroom      string                  `json:"showroom"`
	ShowroomCode  *string                 `json:"showroom_code"`
	Country       string                  `json:"country"`
	CreatedAt     time.Time               `json:"created_at"`
	LastUpdate    time.Time               `json:"last_update"`
	ResponseTime  string                  `json:"response_time"`
}

// EscalationStatsResponse summarizes the board.
type EscalationStatsResponse struct {
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	InProgress      int     `json:"in_progress"`
	Resolved        int     `json:"resolved"`
	CriticalCount   int     `json:"critical_count"`
	AvgResponseTime string  `json:"avg_response_time"`
	AvgResponseHrs  float64 `json:"avg_response_hours"`
}

// EscalationListResponse is the board payload.
type EscalationListResponse struct {
	Data  []EscalationResponse    `json:"data"`
	Stats EscalationStatsResponse `json:"stats"`
}

// EscalatedInteractionResponse is returned after an escalation.
type EscalatedInteractionResponse struct {
	Interaction InteractionResponse `json:"interaction"`
	Escalation  EscalationResponse  `json:"escalation"`
	Message     string              `json:"message"`
}

// FromEscalation maps a domain escalation.
func FromEscalation(e domain.Escalation) EscalationResponse {
	return EscalationResponse{
		ID:            e.ID,
		InteractionID: e.InteractionID,
		CustomerName:  e.CustomerName,
		OrderID:       e.OrderID,
		Issue:         e.Issue,
		Description:   e.Description,
		Priority:      e.Priority,
		Status:        e.Status,
		EscalatedFrom: e.EscalatedFrom.Label(),
		EscalatedTo:   e.EscalatedTo.Label(),
		AssignedTo:    e.AssignedTo,
		Showroom:      e.Showroom,
		ShowroomCode:  e.ShowroomCode,
		Country:       e.Country,
		CreatedAt:     e.CreatedAt,
		LastUpdate:    e.UpdatedAt,
		ResponseTime:  FormatDuration(e.ResponseTime()),
	}
}

// FromEscalationList maps the board.
func FromEscalationList(records []domain.Escalation, stats service.EscalationStats) EscalationListResponse {
	data := make([]EscalationResponse, 0, len(records))
	for _, e := range records {
		data = append(data, FromEscalation(e))
	}
	return EscalationListResponse{
		Data: data,
		Stats: EscalationStatsResponse{
			Total:           stats.Total,
			Pending:         stats.Pending,
			InProgress:      stats.InProgress,
			Resolved:        stats.Resolved,
			CriticalCount:   stats.Urgent,
			AvgResponseTime: FormatDuration(stats.AvgResponseTime),
			AvgResponseHrs:  stats.AvgResponseTime.Hours(),
		},
	}
}

// FormatDuration renders durations the way the board shows them, e.g.
// "3h 50m" or "1d 2h".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0m"
	}
	days := int(d / (24 * time.Hour))
	hours := int(d % (24 * time.Hour) / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	switch {
	case days > 0:
		return formatPair(days, "d", hours, "h")
	case hours > 0:
		return formatPair(hours, "h", minutes, "m")
	default:
		return strconv.Itoa(minutes) + "m"
	}
}

func formatPair(major int, majorUnit string, minor int, minorUnit string) string {
	if minor == 0 {
		return strconv.Itoa(major) + majorUnit
	}
	return strconv.Itoa(major) + majorUnit + " " + strconv.Itoa(minor) + minorUnit
}
