package domain

import "time"

// Event types
const (
	EventTypePostingCreated  = "posting.created"
	EventTypePostingReversed = "posting.reversed"
	EventTypePeriodClosed    = "period.closed"
	EventTypeAccountCreated  = "account.created"
)

// Aggregate types
const (
	AggregateTypePosting = "posting"
	AggregateTypePeriod  = "period"
	AggregateTypeAccount = "account"
)

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// PostingCreatedEvent payload
type PostingCreatedEvent struct {
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	BranchID      string `json:"branch_id"`
	PeriodID      string `json:"period_id"`
	TotalValue    string `json:"total_value"`
	EntryCount    int    `json:"entry_count"`
	ValueDate     string `json:"value_date"`
}

// PostingReversedEvent payload
type PostingReversedEvent struct {
	TransactionID     string `json:"transaction_id"`
	Reference         string `json:"reference"`
	ReversesReference string `json:"reverses_reference"`
	TotalValue        string `json:"total_value"`
}

// PeriodClosedEvent payload
type PeriodClosedEvent struct {
	PeriodID string `json:"period_id"`
	Name     string `json:"name"`
	ClosedAt string `json:"closed_at"`
}

// AccountCreatedEvent payload
type AccountCreatedEvent struct {
	AccountID string `json:"account_id"`
	Code      int64  `json:"code"`
	Name      string `json:"name"`
	Type      string `json:"type"`
}
