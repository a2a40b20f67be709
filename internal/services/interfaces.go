package services

import (
	"context"

	"theark/internal/ledger"
	"theark/internal/pagination"
	"theark/internal/session"
)

// AuthServicer defines the contract for session-related business logic.
type AuthServicer interface {
	Login(ctx context.Context, login, password, ipAddress string) (*session.Token, error)
	Verify(ctx context.Context, token string) (*session.Claims, error)
	Logout(ctx context.Context, token, ipAddress string) error
}

// FormattedSummary holds the BYN display strings of a Summary.
type FormattedSummary struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Net     string `json:"net"`
}

// Dashboard is everything the main page shows for one month.
type Dashboard struct {
	Month     int              `json:"month"`
	MonthName string           `json:"month_name"`
	Months    []string         `json:"months"`
	Entries   []ledger.Entry   `json:"entries"`
	Summary   ledger.Summary   `json:"summary"`
	Formatted FormattedSummary `json:"formatted"`
}

// LedgerServicer defines the contract for ledger-related business logic.
type LedgerServicer interface {
	CreateEntry(ctx context.Context, login, ipAddress string, in ledger.EntryInput) (*ledger.Entry, error)
	GetPeriodEntries(ctx context.Context, periodKey int, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error)
	GetSummary(ctx context.Context, periodKey int) (ledger.Summary, error)
	GetDashboard(ctx context.Context, periodKey int) (*Dashboard, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(login, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
