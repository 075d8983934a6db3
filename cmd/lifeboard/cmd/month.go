package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	monthYear  int
	monthMonth int
)

var monthCmd = &cobra.Command{
	Use:   "month <goal-id>",
	Short: "Summarize a goal's check-ins for one month",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := userID()
		if err != nil {
			return err
		}
		goalID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal id %q: %w", args[0], err)
		}

		now := time.Now()
		year, month := now.Year(), now.Month()
		if monthYear != 0 {
			year = monthYear
		}
		if monthMonth != 0 {
			month = time.Month(monthMonth)
		}

		s, err := app.GoalContainer.Service.MonthlySummary(cmd.Context(), id, goalID, year, month)
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("%s %d", month, year)))
		if s.IsEmpty() {
			fmt.Println(mutedStyle.Render("No check-ins."))
			return nil
		}
		for _, c := range s.CheckIns {
			pct := 0.0
			if c.OverallPercentage != nil {
				pct = *c.OverallPercentage
			}
			fmt.Printf("%s  %5.1f%%\n", c.CheckinDate, pct)
		}
		fmt.Printf("\n%d check-ins, average %d%%, trend %s\n", s.TotalCheckIns, s.AverageProgress, s.Trend)
		if s.BestWeek != nil {
			fmt.Println(mutedStyle.Render("Best week: " + s.BestWeek.CheckinDate.String()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(monthCmd)
	monthCmd.Flags().IntVar(&monthYear, "year", 0, "year (default current)")
	monthCmd.Flags().IntVar(&monthMonth, "month", 0, "month 1-12 (default current)")
}
