package models

import "time"

// LedgerEntry is the stored form of a ledger entry. Seq preserves insertion
// order; EntryID is the id exposed to clients.
type LedgerEntry struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	EntryID     string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"id"`
	Kind        string    `gorm:"size:16;not null" json:"kind"`
	Date        time.Time `gorm:"not null" json:"date"`
	PeriodKey   int       `gorm:"index;not null" json:"period_key"`
	Category    string    `gorm:"not null" json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Note        string    `json:"note,omitempty"`
	Title       string    `gorm:"not null" json:"title"`
	AmountCents int64     `gorm:"type:bigint;not null" json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// RevokedToken denies a session token id until it expires.
type RevokedToken struct {
	Base
	TokenID   string    `gorm:"type:varchar(36);uniqueIndex;not null" json:"token_id"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
}
