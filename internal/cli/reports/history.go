package reports

import (
	"fmt"
	"strings"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/heatmap"
)

// HeatmapCmd prints the contribution grid for a year.
type HeatmapCmd struct {
	Year int `help:"Year to show. Defaults to the current year." short:"y"`
}

func (c *HeatmapCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	year := c.Year
	if year == 0 {
		year = s.Now().Year()
	}
	grid := s.YearGrid(year)
	fmt.Printf("%d\n\n", year)
	fmt.Println(heatmap.Render(grid, heatmap.DefaultOptions()))

	total := 0
	for _, r := range s.State().Reports {
		if r.Date.Local().Year() == year {
			total++
		}
	}
	fmt.Printf("\n%d report(s) in %d\n", total, year)
	return nil
}

// ViewCmd prints the report saved on a day.
type ViewCmd struct {
	Date string `arg:"" optional:"" help:"Day as YYYY-MM-DD, 'today' or 'yesterday'." default:"today"`
}

func (c *ViewCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	v, err := s.ViewDay(c.Date)
	if err != nil {
		return err
	}
	fmt.Println(v.Title)
	if len(v.ProjectNames) > 0 {
		fmt.Printf("Projects: %s\n", strings.Join(v.ProjectNames, ", "))
	}
	fmt.Println()
	fmt.Println(v.ContentText)
	if n := len(v.Images); n > 0 {
		fmt.Printf("\n(%d image(s) attached)\n", n)
	}
	return nil
}
