package core

import (
	"cpu-sched-sim/internal/requests"
)

// Unset marks a start or completion time that has not been assigned yet.
const Unset = -1

// Process is the engine's private, mutable copy of a submitted job.
// The embedded Job value is copied from the request so the caller's
// slice is never aliased or mutated.
type Process struct {
	Job            requests.Job
	Remaining      int
	StartTime      int
	CompletionTime int
}

func newProcess(job requests.Job) *Process {
	return &Process{
		Job:            job,
		Remaining:      job.BurstTime,
		StartTime:      Unset,
		CompletionTime: Unset,
	}
}

// Slice is one execution interval of the Gantt timeline:
// Job ProcessId ran from Start (inclusive) to End (exclusive).
type Slice struct {
	ProcessId int
	Start     int
	End       int
}
