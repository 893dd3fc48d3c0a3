package utils

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Beach", []string{"Beach"}},
		{"Adventure, Beach,,  Culture ", []string{"Adventure", "Beach", "Culture"}},
	}

	for _, tt := range tests {
		if got := SplitCSV(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCSV(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFloatPtr(t *testing.T) {
	if v, err := ParseFloatPtr(""); v != nil || err != nil {
		t.Fatalf("expected nil for empty input, got %v %v", v, err)
	}
	for _, in := range []string{"abc", "NaN", "Inf", "-Inf", "1e400"} {
		if v, err := ParseFloatPtr(in); err == nil {
			t.Errorf("ParseFloatPtr(%q) = %v, want error", in, *v)
		}
	}
	if v, err := ParseFloatPtr(" 150.5 "); err != nil || v == nil || *v != 150.5 {
		t.Fatalf("unexpected value %v (%v)", v, err)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 1},
		{"x", 1},
		{"0", 1},
		{"-3", 1},
		{"4", 4},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in, 1); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStartOfDayAndParseDate(t *testing.T) {
	loc := time.FixedZone("WITA", 8*3600)
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, loc)

	start := StartOfDay(now)
	if start.Hour() != 0 || start.Day() != 10 || start.Location() != loc {
		t.Fatalf("unexpected start of day %v", start)
	}

	d, err := ParseDate("2026-03-10", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(start) {
		t.Errorf("expected %v, got %v", start, d)
	}

	if _, err := ParseDate("10/03/2026", loc); err == nil {
		t.Error("expected error for wrong layout")
	}
}

func TestPagination(t *testing.T) {
	if got := CalculateTotalPages(10, 9); got != 2 {
		t.Errorf("total pages = %d, want 2", got)
	}
	if got := CalculateTotalPages(0, 9); got != 0 {
		t.Errorf("total pages for empty = %d, want 0", got)
	}
	if got := CalculateOffset(3, 9); got != 18 {
		t.Errorf("offset = %d, want 18", got)
	}
	if got := NormalizePage(-1); got != 1 {
		t.Errorf("normalize = %d, want 1", got)
	}
}

func TestCalculateOffset_HugePage(t *testing.T) {
	for _, perPage := range []int{1, 9, 50, 100} {
		for _, page := range []int{math.MaxInt, math.MaxInt / 50, math.MaxInt / perPage} {
			if got := CalculateOffset(page, perPage); got < 0 {
				t.Errorf("CalculateOffset(%d, %d) = %d, overflowed", page, perPage, got)
			}
		}
	}
	if got := ClampPage(math.MaxInt, 100); got != math.MaxInt/100+1 {
		t.Errorf("ClampPage = %d, want %d", got, math.MaxInt/100+1)
	}
	if got := ClampPage(7, 100); got != 7 {
		t.Errorf("ClampPage(7, 100) = %d, want 7", got)
	}
}
