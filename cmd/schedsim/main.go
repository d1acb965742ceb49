package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"cpu-sched-sim/internal/report"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/schedulers"
)

var (
	workloadFile string
	algorithm    string
	timeQuantum  int
)

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Simulate CPU scheduling policies over a CSV workload",
	Long: `schedsim loads a workload file (CSV rows of id,burst,arrival and an
optional priority column), runs it through the chosen scheduling
algorithm and prints the Gantt chart and timing table.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&workloadFile, "file", "f", "", "CSV workload file (required)")
	rootCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "fcfs|sjf|priority|rr|srtf|all")
	rootCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", 2, "round-robin time quantum")
	_ = rootCmd.MarkFlagRequired("file")
}

func run(out io.Writer) error {
	f, err := os.Open(workloadFile)
	if err != nil {
		return fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	jobs, err := loadJobs(f)
	if err != nil {
		return err
	}
	request := &requests.ScheduleRequest{Jobs: jobs, TimeQuantum: timeQuantum}

	if algorithm == "all" {
		for _, name := range schedulers.Algorithms {
			response, err := schedulers.Schedule(name, request)
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n\n", name, err)
				continue
			}
			report.Render(out, algorithmTitle(name), jobs, response)
			fmt.Fprintln(out)
		}
		return nil
	}

	response, err := schedulers.Schedule(algorithm, request)
	if err != nil {
		return err
	}
	report.Render(out, algorithmTitle(algorithm), jobs, response)
	return nil
}

func loadJobs(r io.Reader) ([]requests.Job, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading workload CSV: %w", err)
	}

	jobs := make([]requests.Job, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("row %d: want id,burst,arrival[,priority], got %d columns", i+1, len(row))
		}
		if jobs[i].ProcessId, err = strconv.Atoi(row[0]); err != nil {
			return nil, fmt.Errorf("row %d: bad process id: %w", i+1, err)
		}
		if jobs[i].BurstTime, err = strconv.Atoi(row[1]); err != nil {
			return nil, fmt.Errorf("row %d: bad burst time: %w", i+1, err)
		}
		if jobs[i].ArrivalTime, err = strconv.Atoi(row[2]); err != nil {
			return nil, fmt.Errorf("row %d: bad arrival time: %w", i+1, err)
		}
		if len(row) >= 4 {
			priority, err := strconv.Atoi(row[3])
			if err != nil {
				return nil, fmt.Errorf("row %d: bad priority: %w", i+1, err)
			}
			jobs[i].Priority = &priority
		}
	}

	return jobs, nil
}

func algorithmTitle(name string) string {
	switch name {
	case schedulers.AlgorithmFirstComeFirstServe:
		return "First-come, first-serve"
	case schedulers.AlgorithmShortestJobFirst:
		return "Shortest-job-first"
	case schedulers.AlgorithmPriority:
		return "Priority"
	case schedulers.AlgorithmRoundRobin:
		return "Round-robin"
	case schedulers.AlgorithmShortestRemainingTime:
		return "Shortest-remaining-time-first"
	}
	return name
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
