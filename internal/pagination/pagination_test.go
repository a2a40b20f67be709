package pagination

import (
	"math"
	"testing"
)

func TestPageRequest_Defaults(t *testing.T) {
	var req PageRequest
	req.Defaults()
	if req.Page != 1 || req.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", req.Page, req.PageSize)
	}
	if req.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", req.Offset())
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		req        PageRequest
		want       []int
		totalPages int
	}{
		{"first_page", PageRequest{Page: 1, PageSize: 2}, []int{1, 2}, 3},
		{"last_partial_page", PageRequest{Page: 3, PageSize: 2}, []int{5}, 3},
		{"past_end", PageRequest{Page: 4, PageSize: 2}, []int{}, 3},
		{"defaults", PageRequest{}, []int{1, 2, 3, 4, 5}, 1},
		{"negative_page", PageRequest{Page: -3, PageSize: 2}, []int{1, 2}, 3},
		{"huge_page", PageRequest{Page: math.MaxInt, PageSize: 20}, []int{}, 1},
		{"huge_page_size", PageRequest{Page: 2, PageSize: math.MaxInt}, []int{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.req)
			if len(got.Data) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got.Data)
			}
			for i := range tt.want {
				if got.Data[i] != tt.want[i] {
					t.Errorf("item %d: expected %d, got %d", i, tt.want[i], got.Data[i])
				}
			}
			if got.TotalItems != 5 {
				t.Errorf("expected 5 total items, got %d", got.TotalItems)
			}
			if got.TotalPages != tt.totalPages {
				t.Errorf("expected %d pages, got %d", tt.totalPages, got.TotalPages)
			}
		})
	}
}

func TestSlice_Empty(t *testing.T) {
	got := Slice([]string(nil), PageRequest{})
	if got.Data == nil {
		t.Error("expected non-nil empty data")
	}
	if got.TotalPages != 0 {
		t.Errorf("expected 0 pages, got %d", got.TotalPages)
	}
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	tests := []struct {
		name string
		req  PageRequest
		want int
	}{
		{"second_page", PageRequest{Page: 2, PageSize: 20}, 20},
		{"max_page", PageRequest{Page: math.MaxInt, PageSize: 20}, math.MaxInt},
		{"max_page_size", PageRequest{Page: 3, PageSize: math.MaxInt}, math.MaxInt},
		{"unset", PageRequest{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.Offset(); got != tt.want {
				t.Errorf("expected offset %d, got %d", tt.want, got)
			}
		})
	}
}
