package services

import (
	"context"

	"theark/internal/events"
	"theark/internal/ledger"
	"theark/internal/logger"
	"theark/internal/pagination"
)

// ActionCreateEntry is the audit action for a recorded entry.
const ActionCreateEntry = "CREATE_ENTRY"

// ledgerService handles entry creation and the per-month views.
type ledgerService struct {
	ledger       *ledger.Ledger
	publisher    events.Publisher
	auditService AuditServicer
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(l *ledger.Ledger, publisher events.Publisher, auditService AuditServicer) LedgerServicer {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ledgerService{ledger: l, publisher: publisher, auditService: auditService}
}

// CreateEntry validates and records a new entry, then announces it.
func (s *ledgerService) CreateEntry(ctx context.Context, login, ipAddress string, in ledger.EntryInput) (*ledger.Entry, error) {
	entry, err := s.ledger.CreateEntry(ctx, in)
	if err != nil {
		return nil, err
	}

	s.auditService.Log(login, ActionCreateEntry, "entry", entry.ID, ipAddress,
		map[string]interface{}{"kind": entry.Kind, "amount": entry.Amount.String(), "category": entry.Category})

	// Publishing is best effort.
	if err := s.publisher.PublishEntryCreated(context.WithoutCancel(ctx), *entry); err != nil {
		logger.Get().Warnw("failed to publish entry created event", "entry_id", entry.ID, "error", err)
	}

	return entry, nil
}

// GetPeriodEntries returns one page of the entries for periodKey.
func (s *ledgerService) GetPeriodEntries(ctx context.Context, periodKey int, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error) {
	entries, _, err := s.ledger.Period(ctx, periodKey)
	if err != nil {
		return nil, err
	}
	resp := pagination.Slice(entries, page)
	return &resp, nil
}

// GetSummary returns the totals for periodKey.
func (s *ledgerService) GetSummary(ctx context.Context, periodKey int) (ledger.Summary, error) {
	_, summary, err := s.ledger.Period(ctx, periodKey)
	return summary, err
}

// GetDashboard assembles the main page view for periodKey.
func (s *ledgerService) GetDashboard(ctx context.Context, periodKey int) (*Dashboard, error) {
	entries, summary, err := s.ledger.Period(ctx, periodKey)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Month:     periodKey,
		MonthName: ledger.MonthName(periodKey),
		Months:    ledger.MonthNames(),
		Entries:   entries,
		Summary:   summary,
		Formatted: FormattedSummary{
			Income:  ledger.FormatBYN(summary.Income),
			Expense: ledger.FormatBYN(summary.Expense),
			Net:     ledger.FormatBYN(summary.Net),
		},
	}, nil
}
