package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/lifeboard/internal/container"
)

var (
	configPath string
	userIDFlag string
	app        *container.Container
)

var rootCmd = &cobra.Command{
	Use:   "lifeboard",
	Short: "Goal progress and weekly review engine",
	Long: `lifeboard computes goal progress, monthly check-in trends and the
weekly review dashboard from the task board database.

Run "lifeboard serve" for the HTTP API, or use the other commands to
inspect a single user's numbers from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		c, err := container.New(cmd.Context(), configPath)
		if err != nil {
			return err
		}
		app = c
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to lifeboard.yaml")
	rootCmd.PersistentFlags().StringVarP(&userIDFlag, "user", "u", os.Getenv("LIFEBOARD_USER_ID"), "user id to report on")
}

func userID() (uuid.UUID, error) {
	if userIDFlag == "" {
		return uuid.Nil, fmt.Errorf("--user is required")
	}
	id, err := uuid.Parse(userIDFlag)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user id %q: %w", userIDFlag, err)
	}
	return id, nil
}
