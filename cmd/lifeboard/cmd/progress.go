package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/lifeboard/internal/goal"
)

var progressArea string

var progressCmd = &cobra.Command{
	Use:   "progress [goal-id]",
	Short: "Show goal progress",
	Long: `Show the progress of one goal, or of every active goal when no id is given.

Examples:
  lifeboard progress --user 2f1c... 9a7e...
  lifeboard progress --user 2f1c... --area Health`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := userID()
		if err != nil {
			return err
		}
		svc := app.GoalContainer.Service

		if len(args) == 1 {
			goalID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal id %q: %w", args[0], err)
			}
			p, err := svc.Progress(cmd.Context(), id, goalID)
			if err != nil {
				return err
			}
			printProgress(*p)
			return nil
		}

		area := goal.GoalArea(progressArea)
		if area != "" && !area.IsValid() {
			return fmt.Errorf("unknown area %q", progressArea)
		}
		ap, err := svc.AreaProgress(cmd.Context(), id, area)
		if err != nil {
			return err
		}

		for _, p := range ap.Goals {
			printProgress(p)
		}
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d goals, %d on track, average %d%%",
			ap.TotalGoals, ap.GoalsOnTrack, ap.AverageProgress)))
		return nil
	},
}

func printProgress(p goal.Progress) {
	fmt.Printf("%s %3d%%  %d/%d  %s\n",
		p.GoalID,
		p.CompletionPercentage,
		p.TargetsHit,
		p.TargetsTotal,
		mutedStyle.Render(string(p.Basis)),
	)
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVar(&progressArea, "area", "", "only goals in this area")
}
