package events

import (
	"encoding/json"
	"time"

	"theark/internal/ledger"
)

// EntryCreatedMessage announces a newly recorded ledger entry. Amounts are
// carried in cents.
type EntryCreatedMessage struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Date        string    `json:"date"`
	PeriodKey   int       `json:"period_key"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewEntryCreatedMessage builds the message for entry at time now.
func NewEntryCreatedMessage(entry ledger.Entry, now time.Time) *EntryCreatedMessage {
	return &EntryCreatedMessage{
		ID:          entry.ID,
		Kind:        string(entry.Kind),
		Date:        ledger.FormatDate(entry.Date),
		PeriodKey:   entry.PeriodKey,
		Category:    entry.Category,
		Subcategory: entry.Subcategory,
		AmountCents: int64(entry.Amount),
		Timestamp:   now.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *EntryCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// EntryCreatedMessageFromJSON decodes a message from JSON bytes.
func EntryCreatedMessageFromJSON(data []byte) (*EntryCreatedMessage, error) {
	var msg EntryCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
