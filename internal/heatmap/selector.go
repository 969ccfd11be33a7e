package heatmap

import "github.com/julianstephens/hurryup/internal/constants"

// Selector tracks the displayed year within the supported range.
type Selector struct {
	Year int
}

// NewSelector starts at year, clamped into range.
func NewSelector(year int) *Selector {
	switch {
	case year < constants.HeatmapMinYear:
		year = constants.HeatmapMinYear
	case year > constants.HeatmapMaxYear:
		year = constants.HeatmapMaxYear
	}
	return &Selector{Year: year}
}

// InRange reports whether year can be displayed.
func InRange(year int) bool {
	return year >= constants.HeatmapMinYear && year <= constants.HeatmapMaxYear
}

// Set selects year. Out-of-range years are ignored and return false.
func (s *Selector) Set(year int) bool {
	if !InRange(year) {
		return false
	}
	s.Year = year
	return true
}

// Shift moves the selection by delta years.
func (s *Selector) Shift(delta int) bool {
	return s.Set(s.Year + delta)
}

// Years lists the selectable years.
func Years() []int {
	years := make([]int, 0, constants.HeatmapMaxYear-constants.HeatmapMinYear+1)
	for y := constants.HeatmapMinYear; y <= constants.HeatmapMaxYear; y++ {
		years = append(years, y)
	}
	return years
}
