package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"branchboard/internal/schedule"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Schedule the tasks of a file and print statistics and recommendations",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd)
		if err != nil {
			return err
		}
		in.Method = schedule.MethodAuto

		scheduler := newScheduler(cmd)
		res, err := scheduler.OptimizeSchedule(cmd.Context(), in)
		if err != nil {
			return err
		}
		a := scheduler.GetScheduleAnalysis(cmd.Context(), schedule.AnalysisInput{
			Entries:  res.Entries,
			Tasks:    in.Tasks,
			Calendar: in.Calendar,
		})

		w := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(w, a)
		}

		fmt.Fprintf(w, "Tasks:               %d\n", a.TotalTasks)
		fmt.Fprintf(w, "Scheduled:           %d\n", a.ScheduledTasks)
		fmt.Fprintf(w, "Unscheduled:         %d\n", a.Unscheduled)
		fmt.Fprintf(w, "Estimated hours:     %.2f\n", a.TotalEstimatedHours)
		fmt.Fprintf(w, "Working days:        %d\n", a.WorkingDays)
		fmt.Fprintf(w, "Deadline violations: %d\n", a.DeadlineViolations)
		for _, r := range a.Recommendations {
			fmt.Fprintf(w, "- %s\n", r)
		}
		return nil
	},
}
