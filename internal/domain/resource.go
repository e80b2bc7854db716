package domain

import "github.com/shopspring/decimal"

// Resource is the read-only catalog view of a reservable property or tour.
type Resource struct {
	ID           string           `json:"id"`
	Type         ResourceType     `json:"type"`
	OwnerID      string           `json:"owner_id"`
	AgentID      *string          `json:"agent_id,omitempty"`
	NightlyRate  decimal.Decimal  `json:"nightly_rate"`
	TwoNightRate *decimal.Decimal `json:"two_night_rate,omitempty"`
	MaxCapacity  int              `json:"max_capacity"`
	IsActive     bool             `json:"is_active"`
	Currency     string           `json:"currency"`
}
