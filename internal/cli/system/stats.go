package system

import (
	"fmt"

	"github.com/julianstephens/hurryup/internal/cli"
	"github.com/julianstephens/hurryup/internal/utils"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	s, err := ctx.Onboarded()
	if err != nil {
		return err
	}
	now := s.Now()
	st := s.Stats()
	p := utils.Progress(now)

	fmt.Println(utils.Greeting(now, s.State().User.Name))
	fmt.Printf("Time:           %s\n", utils.ThaiClock(now))
	fmt.Printf("Workday:        %d%% %s\n", p.Percent, p.Message)
	fmt.Printf("Projects:       %d\n", st.TotalProjects)
	fmt.Printf("Reports (year): %d\n", st.ReportsThisYear)
	if st.ReportedToday {
		fmt.Println("Today:          ✓ reported")
	} else {
		fmt.Println("Today:          not reported yet")
	}
	return nil
}
