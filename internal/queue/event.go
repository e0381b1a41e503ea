// Package queue defines message payloads exchanged over the message broker.
package queue

// Actions carried by JournalActivityEvent.
const (
	ActionEntryLogged  = "entry.logged"
	ActionEntryDeleted = "entry.deleted"
)

// JournalActivityEvent is published after an entry save or delete
// succeeds.  It carries enough information for downstream consumers to
// log or trigger notifications without querying the primary database.
type JournalActivityEvent struct {
	Action       string   `json:"action"`
	UserID       uint64   `json:"user_id"`
	EntryID      uint64   `json:"entry_id"`
	EntryDate    string   `json:"entry_date,omitempty"`
	TotalMinutes int      `json:"total_minutes,omitempty"`
	Sports       []string `json:"sports,omitempty"`
	OccurredAt   string   `json:"occurred_at"`
}
