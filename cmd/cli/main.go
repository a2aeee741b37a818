package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"branchboard/internal/schedule"
	scheduleUC "branchboard/internal/schedule/usecase"
	"branchboard/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "branchboard",
	Short: "Branchboard - offline task scheduling",
	Long: `Branchboard schedules the tasks of a YAML file into a work calendar
without a server or database.

Examples:
  branchboard optimize -f tasks.yaml              # Pack tasks with the auto policy
  branchboard optimize -f tasks.yaml -m wspt      # Force a policy
  branchboard analyze -f tasks.yaml --json        # Statistics and recommendations`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", "tasks.yaml", "YAML task file")
	rootCmd.PersistentFlags().String("now", "", "Reference instant (RFC3339), default: current time")
	rootCmd.PersistentFlags().Bool("json", false, "Print JSON instead of a table")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log scheduler diagnostics")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// newScheduler builds the scheduler facade; diagnostics are logged only with --verbose.
func newScheduler(cmd *cobra.Command) schedule.UseCase {
	l := log.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console"})
	}
	return scheduleUC.New(l, nil)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
