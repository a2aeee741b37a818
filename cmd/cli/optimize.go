package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"branchboard/internal/model"
	"branchboard/internal/schedule"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Order, pack and validate the tasks of a file",
	Long: `Runs a scheduling policy over the eligible tasks and packs them into
the work calendar. Entries that miss their deadline or start more than 30 days
out are flagged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := readInput(cmd)
		if err != nil {
			return err
		}
		method, _ := cmd.Flags().GetString("method")
		in.Method = schedule.ParseMethod(method)

		res, err := newScheduler(cmd).OptimizeSchedule(cmd.Context(), in)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		return printResult(cmd.OutOrStdout(), res, in.Calendar)
	},
}

func init() {
	optimizeCmd.Flags().StringP("method", "m", string(schedule.MethodAuto), "Policy: auto, edd, wspt or dependencies")
}

// readInput loads the task file and resolves --now.
func readInput(cmd *cobra.Command) (schedule.OptimizeInput, error) {
	now := time.Now()
	if raw, _ := cmd.Flags().GetString("now"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return schedule.OptimizeInput{}, fmt.Errorf("--now: %w", err)
		}
		now = t
	}

	path, _ := cmd.Flags().GetString("file")
	tasks, cal, err := loadTaskFile(path, now)
	if err != nil {
		return schedule.OptimizeInput{}, err
	}
	return schedule.OptimizeInput{Tasks: tasks, Calendar: cal, Now: now}, nil
}

func printResult(w io.Writer, res schedule.Result, cal model.WorkCalendar) error {
	loc, err := cal.Location()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Method: %s (requested %s)\n", res.Applied, res.Requested)
	if res.Fallback {
		fmt.Fprintf(w, "Fallback: %s\n", res.FallbackReason)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK\tTITLE\tSTART\tEND\tHOURS\tISSUES")
	for _, e := range res.Entries {
		issues := make([]string, len(e.Issues))
		for i, is := range e.Issues {
			issues[i] = string(is)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
			e.TaskID, e.Task.Title,
			e.StartTime.In(loc).Format("Mon 2006-01-02 15:04"),
			e.EndTime.In(loc).Format("15:04"),
			e.Duration, strings.Join(issues, ","))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Blocked) > 0 {
		fmt.Fprintf(w, "Blocked by dependency cycles: %s\n", strings.Join(res.Blocked, ", "))
	}
	if n := res.Unscheduled(); n > 0 {
		fmt.Fprintf(w, "Unscheduled: %d\n", n)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
