package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/hurryup/internal/constants"
)

// buddhistEraOffset converts a Gregorian year to the Thai Buddhist-era year.
const buddhistEraOffset = 543

var thaiMonthsLong = [12]string{
	"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
	"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
}

var thaiMonthsShort = [12]string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// DayKey returns the local calendar-day key (YYYY-MM-DD) for t.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDayKey parses a YYYY-MM-DD key into midnight in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// legacyDayFormat is the Date.toDateString() form older documents stored.
const legacyDayFormat = "Mon Jan 02 2006"

// NormalizeDayKey rewrites a legacy "Fri Mar 07 2025" day string into a day
// key. Keys and unrecognised strings are returned unchanged.
func NormalizeDayKey(s string, loc *time.Location) string {
	if _, err := ParseDayKey(s, loc); err == nil {
		return s
	}
	t, err := time.ParseInLocation(legacyDayFormat, s, loc)
	if err != nil {
		return s
	}
	return DayKey(t)
}

// BuddhistYear returns the Thai Buddhist-era year for t.
func BuddhistYear(t time.Time) int {
	return t.Year() + buddhistEraOffset
}

// ThaiMonth returns the full Thai month name.
func ThaiMonth(m time.Month) string {
	return thaiMonthsLong[m-1]
}

// ThaiMonthShort returns the abbreviated Thai month name.
func ThaiMonthShort(m time.Month) string {
	return thaiMonthsShort[m-1]
}

// ThaiLongDate renders "19 ตุลาคม 2569".
func ThaiLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ThaiMonth(t.Month()), BuddhistYear(t))
}

// ThaiShortDate renders "19 ต.ค. 2569".
func ThaiShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), ThaiMonthShort(t.Month()), BuddhistYear(t))
}

// ThaiClock renders the header clock, "19 ตุลาคม 2569 - 09:05:03 น.".
func ThaiClock(t time.Time) string {
	return fmt.Sprintf("%s - %02d:%02d:%02d น.", ThaiLongDate(t), t.Hour(), t.Minute(), t.Second())
}
