package domain

import "time"

// Branch identifies a club location that transactions are posted under.
type Branch struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// PeriodStatus is the lifecycle state of a posting period.
type PeriodStatus string

const (
	PeriodStatusOpen   PeriodStatus = "open"
	PeriodStatusClosed PeriodStatus = "closed"
)

// PostingPeriod is a bounded date range during which transactions may be
// recorded. Closed periods reject new postings.
type PostingPeriod struct {
	ID        string
	Name      string
	StartsOn  time.Time
	EndsOn    time.Time
	Status    PeriodStatus
	ClosedAt  *time.Time
	CreatedAt time.Time
}

// IsOpen reports whether the period accepts new postings.
func (p *PostingPeriod) IsOpen() bool {
	return p.Status == PeriodStatusOpen
}

// Contains reports whether d falls inside the period's date range.
func (p *PostingPeriod) Contains(d time.Time) bool {
	return !d.Before(p.StartsOn) && !d.After(p.EndsOn)
}
