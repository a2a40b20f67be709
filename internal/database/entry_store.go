package database

import (
	"context"
	"fmt"

	"theark/internal/ledger"
	"theark/internal/models"

	"gorm.io/gorm"
)

// EntryStore persists ledger entries through gorm. It satisfies ledger.Store.
type EntryStore struct {
	db *gorm.DB
}

// NewEntryStore creates an EntryStore on db.
func NewEntryStore(db *gorm.DB) *EntryStore {
	return &EntryStore{db: db}
}

// Append inserts entry as a new row.
func (s *EntryStore) Append(ctx context.Context, entry ledger.Entry) error {
	row := toModel(entry)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// List returns all entries in insertion order.
func (s *EntryStore) List(ctx context.Context) ([]ledger.Entry, error) {
	var rows []models.LedgerEntry
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}

	entries := make([]ledger.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, fromModel(row))
	}
	return entries, nil
}

func toModel(e ledger.Entry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:     e.ID,
		Kind:        string(e.Kind),
		Date:        e.Date,
		PeriodKey:   e.PeriodKey,
		Category:    e.Category,
		Subcategory: e.Subcategory,
		Note:        e.Note,
		Title:       e.Title,
		AmountCents: int64(e.Amount),
	}
}

func fromModel(m models.LedgerEntry) ledger.Entry {
	return ledger.Entry{
		ID:          m.EntryID,
		Kind:        ledger.Kind(m.Kind),
		Date:        m.Date.UTC(),
		PeriodKey:   m.PeriodKey,
		Category:    m.Category,
		Subcategory: m.Subcategory,
		Note:        m.Note,
		Title:       m.Title,
		Amount:      ledger.Money(m.AmountCents),
	}
}
