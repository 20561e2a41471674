package clock

import (
	"testing"
	"time"
)

func TestNowUsesFakeDate(t *testing.T) {
	c, err := New("America/Chicago", "2025-03-14")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := c.Now()
	if got.Year() != 2025 || got.Month() != time.March || got.Day() != 14 {
		t.Fatalf("Now() = %v, want 2025-03-14", got)
	}
	if got.Location().String() != "America/Chicago" {
		t.Fatalf("location = %v, want America/Chicago", got.Location())
	}
}

func TestNowMalformedFakeDateFallsBack(t *testing.T) {
	c, err := New("America/Chicago", "not-a-date")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	got := c.Now()
	if !got.Equal(fixed) {
		t.Fatalf("Now() = %v, want real time %v", got, fixed)
	}
}

func TestNewDefaultTimezone(t *testing.T) {
	c, err := New("", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Location().String() != DefaultTimezone {
		t.Fatalf("location = %v, want %v", c.Location(), DefaultTimezone)
	}
}

func TestNewBadTimezone(t *testing.T) {
	if _, err := New("Not/AZone", ""); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
