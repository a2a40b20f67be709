package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "theark/internal/errors"
	"theark/internal/ledger"
	"theark/internal/middleware"
	"theark/internal/pagination"
	"theark/internal/services"
)

// --- mock services ---

type mockLedgerService struct {
	createEntryFn      func(ctx context.Context, login, ipAddress string, in ledger.EntryInput) (*ledger.Entry, error)
	getPeriodEntriesFn func(ctx context.Context, periodKey int, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error)
	getSummaryFn       func(ctx context.Context, periodKey int) (ledger.Summary, error)
	getDashboardFn     func(ctx context.Context, periodKey int) (*services.Dashboard, error)
}

func (m *mockLedgerService) CreateEntry(ctx context.Context, login, ipAddress string, in ledger.EntryInput) (*ledger.Entry, error) {
	if m.createEntryFn != nil {
		return m.createEntryFn(ctx, login, ipAddress, in)
	}
	return &ledger.Entry{}, nil
}

func (m *mockLedgerService) GetPeriodEntries(ctx context.Context, periodKey int, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error) {
	if m.getPeriodEntriesFn != nil {
		return m.getPeriodEntriesFn(ctx, periodKey, page)
	}
	resp := pagination.NewPageResponse[ledger.Entry](nil, 1, 20, 0)
	return &resp, nil
}

func (m *mockLedgerService) GetSummary(ctx context.Context, periodKey int) (ledger.Summary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(ctx, periodKey)
	}
	return ledger.Summary{}, nil
}

func (m *mockLedgerService) GetDashboard(ctx context.Context, periodKey int) (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(ctx, periodKey)
	}
	return &services.Dashboard{Month: periodKey}, nil
}

// --- test helpers ---

// fixedNow is a date in March, so the default month is 2.
func fixedNow() time.Time {
	return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
}

func injectLogin(login string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.LoginKey, login)
		c.Next()
	}
}

func setupEntryRouter(handler *EntryHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/app/api/entries", injectLogin("admin"), handler.CreateEntry)
	r.GET("/app/api/entries", handler.ListEntries)
	r.GET("/app/api/summary", handler.GetSummary)
	return r
}

// --- tests ---

func TestEntryHandler_CreateEntry(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		var got ledger.EntryInput
		var gotLogin string
		svc := &mockLedgerService{
			createEntryFn: func(_ context.Context, login, _ string, in ledger.EntryInput) (*ledger.Entry, error) {
				got, gotLogin = in, login
				return &ledger.Entry{
					ID:       "e1",
					Kind:     in.Kind,
					Category: in.Category,
					Title:    in.Category,
					Amount:   120000,
				}, nil
			},
		}
		r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

		rec := doRequest(r, http.MethodPost, "/app/api/entries",
			`{"kind":"income","date":"05.01.2026","amount":"1200","category":"Доход от аренды","note":" склад "}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotLogin != "admin" {
			t.Errorf("expected login admin, got %q", gotLogin)
		}
		want := ledger.EntryInput{Kind: ledger.KindIncome, Date: "05.01.2026", Amount: "1200", Category: "Доход от аренды", Note: " склад "}
		if got != want {
			t.Errorf("expected input %+v, got %+v", want, got)
		}

		entry, ok := parseJSON(t, rec)["entry"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected entry object, got %s", rec.Body.String())
		}
		if entry["id"] != "e1" || entry["amount"] != 1200.0 {
			t.Errorf("unexpected entry %v", entry)
		}
	})

	t.Run("returns 400 for unknown kind", func(t *testing.T) {
		var called bool
		svc := &mockLedgerService{
			createEntryFn: func(context.Context, string, string, ledger.EntryInput) (*ledger.Entry, error) {
				called = true
				return nil, nil
			},
		}
		r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

		rec := doRequest(r, http.MethodPost, "/app/api/entries", `{"kind":"transfer","date":"05.01.2026","amount":"1"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
		if called {
			t.Error("service must not be called for an invalid request")
		}
	})

	t.Run("passes validation errors through", func(t *testing.T) {
		tests := []struct {
			err     *apperrors.AppError
			code    string
			message string
		}{
			{apperrors.ErrBadFormat, "BAD_FORMAT", "Дата должна быть в формате DD.MM.YYYY"},
			{apperrors.ErrBadDate, "BAD_DATE", "Некорректная дата"},
			{apperrors.ErrBadAmount, "BAD_AMOUNT", "Введите корректную сумму"},
			{apperrors.ErrMissingSubcategory, "MISSING_SUBCATEGORY", "Выберите подкатегорию"},
		}
		for _, tt := range tests {
			t.Run(tt.code, func(t *testing.T) {
				svc := &mockLedgerService{
					createEntryFn: func(context.Context, string, string, ledger.EntryInput) (*ledger.Entry, error) {
						return nil, tt.err
					},
				}
				r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

				rec := doRequest(r, http.MethodPost, "/app/api/entries", `{"kind":"expense","date":"x","amount":"y"}`)

				if rec.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", rec.Code)
				}
				result := parseJSON(t, rec)
				assertErrorCode(t, result, tt.code)
				assertErrorMessage(t, result, tt.message)
			})
		}
	})

	t.Run("returns 500 on store failure", func(t *testing.T) {
		svc := &mockLedgerService{
			createEntryFn: func(context.Context, string, string, ledger.EntryInput) (*ledger.Entry, error) {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, context.Canceled)
			},
		}
		r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

		rec := doRequest(r, http.MethodPost, "/app/api/entries", `{"kind":"expense"}`)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INTERNAL_ERROR")
	})
}

func TestEntryHandler_ListEntries(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantMonth int
		wantPage  pagination.PageRequest
		wantCode  int
	}{
		{name: "defaults to current month", query: "", wantMonth: 2, wantCode: http.StatusOK},
		{name: "explicit month", query: "?month=0", wantMonth: 0, wantCode: http.StatusOK},
		{name: "pagination", query: "?month=11&page=2&page_size=5", wantMonth: 11, wantPage: pagination.PageRequest{Page: 2, PageSize: 5}, wantCode: http.StatusOK},
		{name: "month out of range", query: "?month=12", wantCode: http.StatusBadRequest},
		{name: "month not a number", query: "?month=jan", wantCode: http.StatusBadRequest},
		{name: "page size too large", query: "?page_size=1000", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMonth := -1
			var gotPage pagination.PageRequest
			svc := &mockLedgerService{
				getPeriodEntriesFn: func(_ context.Context, periodKey int, page pagination.PageRequest) (*pagination.PageResponse[ledger.Entry], error) {
					gotMonth, gotPage = periodKey, page
					resp := pagination.NewPageResponse([]ledger.Entry{{ID: "e1"}}, 1, 20, 1)
					return &resp, nil
				},
			}
			r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

			rec := doRequest(r, http.MethodGet, "/app/api/entries"+tt.query, "")

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
				return
			}
			if gotMonth != tt.wantMonth {
				t.Errorf("expected month %d, got %d", tt.wantMonth, gotMonth)
			}
			if gotPage != tt.wantPage {
				t.Errorf("expected page %+v, got %+v", tt.wantPage, gotPage)
			}
			body := parseJSON(t, rec)
			if body["total_items"] != 1.0 {
				t.Errorf("unexpected body %v", body)
			}
		})
	}
}

func TestEntryHandler_GetSummary(t *testing.T) {
	svc := &mockLedgerService{
		getSummaryFn: func(_ context.Context, periodKey int) (ledger.Summary, error) {
			if periodKey != 0 {
				t.Errorf("expected month 0, got %d", periodKey)
			}
			return ledger.Summary{Income: 540000, Expense: 120000, Net: 420000}, nil
		},
	}
	r := setupEntryRouter(NewEntryHandler(svc, fixedNow))

	rec := doRequest(r, http.MethodGet, "/app/api/summary?month=0", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := parseJSON(t, rec)
	if body["month_name"] != "Январь" {
		t.Errorf("expected Январь, got %v", body["month_name"])
	}
	summary := body["summary"].(map[string]interface{})
	if summary["income"] != 5400.0 || summary["expense"] != 1200.0 || summary["net"] != 4200.0 {
		t.Errorf("unexpected summary %v", summary)
	}
	formatted := body["formatted"].(map[string]interface{})
	if formatted["net"] != "4\u00a0200,00 BYN" {
		t.Errorf("unexpected formatted net %q", formatted["net"])
	}
}
