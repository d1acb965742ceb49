package core

import (
	"fmt"
	"sort"

	"cpu-sched-sim/internal/requests"
)

// Simulation holds the state of one scheduling run: the working copies
// of the submitted jobs, the arrival-ordered pending list, the clock
// and the timeline built so far. One Simulation simulates exactly one
// policy run over one job set.
type Simulation struct {
	procs    []*Process // input order, used for reporting
	pending  []*Process // arrival order, not yet admitted
	now      int
	timeline []Slice
}

func NewSimulation(jobs []requests.Job) (*Simulation, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}

	seen := make(map[int]struct{}, len(jobs))
	procs := make([]*Process, 0, len(jobs))
	for _, job := range jobs {
		if _, ok := seen[job.ProcessId]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProcess, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
		if job.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d", ErrNegativeArrival, job.ProcessId)
		}
		if job.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: process %d", ErrNonPositiveBurst, job.ProcessId)
		}
		procs = append(procs, newProcess(job))
	}

	// stable sort keeps input order among equal arrival times
	pending := make([]*Process, len(procs))
	copy(pending, procs)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Job.ArrivalTime < pending[j].Job.ArrivalTime
	})

	return &Simulation{procs: procs, pending: pending}, nil
}

func (s *Simulation) Now() int {
	return s.now
}

func (s *Simulation) HasPending() bool {
	return len(s.pending) > 0
}

// NextArrival returns the arrival time of the earliest pending
// process. Only valid while HasPending.
func (s *Simulation) NextArrival() int {
	return s.pending[0].Job.ArrivalTime
}

// AdmitArrived removes every pending process with arrival_time <= now
// and returns them in arrival order.
func (s *Simulation) AdmitArrived() []*Process {
	var arrived []*Process
	for len(s.pending) > 0 && s.pending[0].Job.ArrivalTime <= s.now {
		arrived = append(arrived, s.pending[0])
		s.pending = s.pending[1:]
	}
	return arrived
}

// AdvanceToNextArrival jumps the clock to the earliest pending
// arrival. The skipped range is CPU idle time and produces no
// timeline slice.
func (s *Simulation) AdvanceToNextArrival() {
	s.now = s.pending[0].Job.ArrivalTime
}

// Run executes p for the given number of ticks: records the timeline
// slice, advances the clock, decrements the remaining work and stamps
// start/completion times.
func (s *Simulation) Run(p *Process, ticks int) {
	if p.StartTime == Unset {
		p.StartTime = s.now
	}
	s.timeline = append(s.timeline, Slice{
		ProcessId: p.Job.ProcessId,
		Start:     s.now,
		End:       s.now + ticks,
	})
	s.now += ticks
	p.Remaining -= ticks
	if p.Remaining == 0 {
		p.CompletionTime = s.now
	}
}

// Timeline returns the execution intervals in the order they were
// emitted.
func (s *Simulation) Timeline() []Slice {
	return s.timeline
}

// Processes returns the working copies in caller input order.
func (s *Simulation) Processes() []*Process {
	return s.procs
}

// Completed returns the processes once every one of them has finished.
// Asking for results mid-run is a caller error.
func (s *Simulation) Completed() ([]*Process, error) {
	for _, p := range s.procs {
		if p.CompletionTime == Unset {
			return nil, fmt.Errorf("%w: process %d", ErrIncompleteRun, p.Job.ProcessId)
		}
	}
	return s.procs, nil
}
