// Package heatmap aggregates report history into a GitHub-style year grid.
package heatmap

import (
	"fmt"
	"time"

	"github.com/julianstephens/hurryup/internal/models"
	"github.com/julianstephens/hurryup/internal/utils"
)

const MaxLevel = 3

type CellKind int

const (
	// CellEmpty pads the first and last week outside the year.
	CellEmpty CellKind = iota
	CellDay
	// CellFuture is a day after today; it has no level.
	CellFuture
)

type Cell struct {
	Kind    CellKind
	Date    time.Time
	Key     string
	Count   int
	Level   int
	Tooltip string
}

// Week is one grid column, Sunday first.
type Week [7]Cell

type MonthLabel struct {
	Month time.Month
	Label string
	Week  int
}

type YearGrid struct {
	Year   int
	Weeks  []Week
	Months []MonthLabel
}

// IsLeap applies the Gregorian leap-year rule.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns 366 for leap years, else 365.
func DaysIn(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// Level maps an activity count to a shade.
func Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count >= MaxLevel:
		return MaxLevel
	default:
		return count
	}
}

// CountByDay sums report project counts per local day key.
func CountByDay(reports []models.Report, loc *time.Location) map[string]int {
	counts := make(map[string]int)
	for _, r := range reports {
		counts[utils.DayKey(r.Date.In(loc))] += r.ProjectCount()
	}
	return counts
}

// BuildYearGrid lays out year as week columns in now's location.
func BuildYearGrid(reports []models.Report, year int, now time.Time) YearGrid {
	loc := now.Location()
	counts := CountByDay(reports, loc)
	endOfToday := utils.StartOfDay(now).AddDate(0, 0, 1)

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	offset := int(jan1.Weekday())
	total := DaysIn(year)
	weeks := (total + offset + 6) / 7

	grid := YearGrid{Year: year, Weeks: make([]Week, weeks)}
	for w := 0; w < weeks; w++ {
		for d := 0; d < 7; d++ {
			idx := w*7 + d - offset
			if idx < 0 || idx >= total {
				continue
			}
			date := jan1.AddDate(0, 0, idx)
			key := utils.DayKey(date)
			count := counts[key]

			cell := Cell{
				Kind:    CellDay,
				Date:    date,
				Key:     key,
				Count:   count,
				Level:   Level(count),
				Tooltip: tooltip(date, count),
			}
			if !date.Before(endOfToday) {
				cell.Kind = CellFuture
				cell.Level = 0
			}
			grid.Weeks[w][d] = cell
		}
	}
	grid.Months = MonthLabels(year, loc)
	return grid
}

// MonthLabels gives the week column where each month starts.
func MonthLabels(year int, loc *time.Location) []MonthLabel {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	offset := int(jan1.Weekday())
	labels := make([]MonthLabel, 0, 12)
	for m := time.January; m <= time.December; m++ {
		start := time.Date(year, m, 1, 0, 0, 0, 0, loc)
		dayOfYear := start.YearDay() - 1
		labels = append(labels, MonthLabel{
			Month: m,
			Label: utils.ThaiMonthShort(m),
			Week:  (dayOfYear + offset) / 7,
		})
	}
	return labels
}

func tooltip(date time.Time, count int) string {
	if count > 0 {
		return fmt.Sprintf("%s: %d โครงการ", utils.ThaiShortDate(date), count)
	}
	return utils.ThaiShortDate(date) + ": ไม่มีข้อมูล"
}

// Cells returns every real day cell in date order.
func (g YearGrid) Cells() []Cell {
	var out []Cell
	for _, w := range g.Weeks {
		for _, c := range w {
			if c.Kind != CellEmpty {
				out = append(out, c)
			}
		}
	}
	return out
}

// Lookup finds the cell for a day key.
func (g YearGrid) Lookup(key string) (Cell, bool) {
	for _, c := range g.Cells() {
		if c.Key == key {
			return c, true
		}
	}
	return Cell{}, false
}
