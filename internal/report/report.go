package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// Render writes a title, an ASCII Gantt strip and a schedule table for
// one finished simulation. Rows follow the caller's job order;
// the Gantt strip follows the execution intervals exactly as the
// engine emitted them.
func Render(w io.Writer, title string, jobs []requests.Job, response *responses.ScheduleResponse) {
	writeTitle(w, title)
	writeGantt(w, response.Gantt)
	writeSchedule(w, jobs, response)
}

func writeTitle(w io.Writer, title string) {
	heading := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	heading.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeGantt(w io.Writer, gantt []responses.GanttEntry) {
	fmt.Fprintln(w, "Gantt schedule")
	fmt.Fprint(w, "|")
	for _, entry := range gantt {
		label := fmt.Sprintf("P%d", entry.ProcessId)
		pad := 8 - len(label)
		if pad < 0 {
			pad = 0
		}
		left := pad / 2
		fmt.Fprint(w, strings.Repeat(" ", left), label, strings.Repeat(" ", pad-left), "|")
	}
	fmt.Fprintln(w)
	for i, entry := range gantt {
		fmt.Fprint(w, entry.StartTime, "\t")
		if i == len(gantt)-1 {
			fmt.Fprint(w, entry.EndTime)
		}
	}
	fmt.Fprintf(w, "\n\n")
}

func writeSchedule(w io.Writer, jobs []requests.Job, response *responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for i, detail := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(detail.ProcessId),
			priorityLabel(jobs[i]),
			fmt.Sprint(jobs[i].BurstTime),
			fmt.Sprint(jobs[i].ArrivalTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.CompletionTime),
		})
	}

	fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		""})
	table.Render()
}

func priorityLabel(job requests.Job) string {
	if job.Priority == nil {
		return "-"
	}
	return fmt.Sprint(*job.Priority)
}
