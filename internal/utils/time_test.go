package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	got := DayKey(time.Date(2025, time.March, 7, 23, 59, 0, 0, time.Local))
	if got != "2025-03-07" {
		t.Errorf("DayKey() = %q, want %q", got, "2025-03-07")
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.Local)
	tests := []struct {
		name  string
		other time.Time
		want  bool
	}{
		{"same instant", base, true},
		{"late same day", time.Date(2025, time.March, 7, 23, 59, 59, 0, time.Local), true},
		{"next day", time.Date(2025, time.March, 8, 0, 0, 0, 0, time.Local), false},
		{"same day previous year", time.Date(2024, time.March, 7, 9, 0, 0, 0, time.Local), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(base, tt.other); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDayKey(t *testing.T) {
	got, err := ParseDayKey("2024-02-29", time.UTC)
	if err != nil {
		t.Fatalf("ParseDayKey() error = %v", err)
	}
	if !got.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseDayKey() = %v", got)
	}

	if _, err := ParseDayKey("Mon Mar 07 2025", time.UTC); err == nil {
		t.Error("ParseDayKey() should reject non-key strings")
	}
}

func TestNormalizeDayKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fri Mar 07 2025", "2025-03-07"},
		{"2025-03-07", "2025-03-07"},
		{"yesterday", "yesterday"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeDayKey(tt.in, time.Local); got != tt.want {
			t.Errorf("NormalizeDayKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestThaiDates(t *testing.T) {
	d := time.Date(2025, time.January, 5, 8, 4, 3, 0, time.UTC)

	tests := []struct {
		name string
		fn   func(time.Time) string
		want string
	}{
		{"long", ThaiLongDate, "5 มกราคม 2568"},
		{"short", ThaiShortDate, "5 ม.ค. 2568"},
		{"clock", ThaiClock, "5 มกราคม 2568 - 08:04:03 น."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(d); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	if got := ThaiMonthShort(time.December); got != "ธ.ค." {
		t.Errorf("ThaiMonthShort(December) = %q", got)
	}
}
