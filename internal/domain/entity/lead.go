package entity

import "time"

// Lead statuses.
const (
	LeadStatusNew       = "NEW"
	LeadStatusContacted = "CONTACTED"
	LeadStatusQuoted    = "QUOTED"
	LeadStatusWon       = "WON"
	LeadStatusLost      = "LOST"
)

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}

// Lead links a customer to the agent working the sale. Bookings hang off the
// lead, and commission is attributed to the lead's agent.
type Lead struct {
	ID         string
	CustomerID string
	AgentID    string
	Status     string
	Source     string
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
