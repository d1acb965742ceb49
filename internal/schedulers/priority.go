package schedulers

import (
	"fmt"
	"log"

	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// SchedulePriority picks the ready process with the lowest priority
// number (lower number = higher priority) and runs it to completion.
// Every job must carry a priority; a missing one rejects the request
// before the simulation starts.
func SchedulePriority(request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")

	for _, job := range request.Jobs {
		if job.Priority == nil {
			return nil, fmt.Errorf("%w: process %d", core.ErrMissingPriority, job.ProcessId)
		}
	}

	sim, err := core.NewSimulation(request.Jobs)
	if err != nil {
		return nil, err
	}

	readyQueue := core.NewReadyQueue(func(p *core.Process) int { return *p.Job.Priority })
	for readyQueue.Len() > 0 || sim.HasPending() {
		for _, proccess := range sim.AdmitArrived() {
			readyQueue.Push(proccess)
		}
		if readyQueue.Len() == 0 {
			sim.AdvanceToNextArrival()
			continue
		}

		proccess := readyQueue.Pop()
		sim.Run(proccess, proccess.Remaining)
	}

	return generateResponse(sim)
}
