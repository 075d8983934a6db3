package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var dashboardJSON bool

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weekly review dashboard",
	Long: `Show every review area ordered by priority, most urgent first.

Examples:
  lifeboard dashboard --user 2f1c...
  lifeboard dashboard --user 2f1c... --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := userID()
		if err != nil {
			return err
		}

		svc := app.ReviewContainer.Service
		now := time.Now()
		areas := svc.Dashboard(cmd.Context(), id, now)

		if dashboardJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(areas)
		}

		fmt.Println(titleStyle.Render("Weekly review"))
		for _, a := range areas {
			fmt.Printf("%s %s %3d%%  %2d overdue  %5.1fh  %s\n",
				bucketStyle.Render(string(a.Area)),
				levelStyle(a.Priority).Render(string(a.Priority)),
				a.ProgressPercentage,
				a.OverdueTasks,
				a.HoursThisWeek,
				mutedStyle.Render(a.LastUpdatedFormatted),
			)
		}

		s := svc.Summary(cmd.Context(), id, now)
		fmt.Println()
		if s.AllClear {
			fmt.Println(mutedStyle.Render("All clear."))
		} else {
			fmt.Println(mutedStyle.Render(fmt.Sprintf("%d critical, %d warning", s.TotalCritical, s.TotalWarning)))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "print JSON instead of a table")
}
