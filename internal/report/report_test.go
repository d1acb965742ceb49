package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/schedulers"
)

func TestRender(t *testing.T) {
	ass := assert.New(t)

	jobs := []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 5},
		{ProcessId: 2, ArrivalTime: 1, BurstTime: 3},
		{ProcessId: 3, ArrivalTime: 2, BurstTime: 8},
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(&requests.ScheduleRequest{Jobs: jobs})
	ass.NoError(err)

	var buf bytes.Buffer
	Render(&buf, "First-come, first-serve", jobs, response)
	out := buf.String()

	ass.Contains(out, "First-come, first-serve")
	ass.Contains(out, "Gantt schedule")
	ass.Contains(out, "P1")
	ass.Contains(out, "P3")
	ass.Contains(out, "Schedule table")
	ass.Contains(out, "TURNAROUND")
	ass.Contains(out, "3.33")
	ass.Contains(out, "8.67")

	// jobs without priorities render a placeholder column
	ass.True(strings.Contains(out, "-"))
}

func TestRender_GanttCellsStayAlignedForWideIds(t *testing.T) {
	ass := assert.New(t)

	jobs := []requests.Job{
		{ProcessId: 1, ArrivalTime: 0, BurstTime: 2},
		{ProcessId: 10, ArrivalTime: 1, BurstTime: 2},
		{ProcessId: 100, ArrivalTime: 2, BurstTime: 2},
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(&requests.ScheduleRequest{Jobs: jobs})
	ass.NoError(err)

	var buf bytes.Buffer
	Render(&buf, "First-come, first-serve", jobs, response)

	var strip string
	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Gantt schedule") && i+1 < len(lines) {
			strip = lines[i+1]
			break
		}
	}
	ass.NotEmpty(strip)

	// every cell is the same width regardless of label length
	cells := strings.Split(strings.Trim(strip, "|"), "|")
	ass.Len(cells, 3)
	for _, cell := range cells {
		ass.Len(cell, 8, "cell %q", cell)
	}
	ass.Contains(strip, "P10")
	ass.Contains(strip, "P100")
}
