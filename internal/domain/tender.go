package domain

import "time"

// TenderStatus enumerates tender lifecycle states.
type TenderStatus string

const (
	TenderStatusDraft           TenderStatus = "draft"
	TenderStatusPublished       TenderStatus = "published"
	TenderStatusLive            TenderStatus = "live"
	TenderStatusPendingApproval TenderStatus = "pending_approval"
	TenderStatusClosed          TenderStatus = "closed"
)

// QuotaStatuses are the states that count toward the tender-per-month quota.
// Soft-deleted rows in these states still count; deleting a tender does not
// free up quota.
var QuotaStatuses = []TenderStatus{
	TenderStatusPublished,
	TenderStatusLive,
	TenderStatusPendingApproval,
}

// Tender is a published request for quotes from subcontractors.
type Tender struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Trade       string
	Suburb      string
	Status      TenderStatus
	Deleted     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Quote is a subcontractor's response to a tender.
type Quote struct {
	ID          string
	TenderID    string
	UserID      string
	AmountCents int64
	Message     string
	CreatedAt   time.Time
}

// Availability is a date a subcontractor advertises as open for work.
type Availability struct {
	ID        string
	UserID    string
	Day       time.Time
	Note      string
	CreatedAt time.Time
}
