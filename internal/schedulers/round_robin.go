package schedulers

import (
	"fmt"
	"log"

	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// ScheduleRoundRobin runs the ready queue as a FIFO, giving the head
// at most timeQuantum ticks before preempting it to the tail. A
// process that arrives exactly when another is preempted is queued
// ahead of the preempted one.
func ScheduleRoundRobin(request *requests.ScheduleRequest, timeQuantum int) (*responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum =", timeQuantum)

	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidQuantum, timeQuantum)
	}

	sim, err := core.NewSimulation(request.Jobs)
	if err != nil {
		return nil, err
	}

	var readyQueue []*core.Process
	var preempted *core.Process
	for {
		// new arrivals enter the queue before a preempted process
		// goes back to the tail
		readyQueue = append(readyQueue, sim.AdmitArrived()...)
		if preempted != nil {
			readyQueue = append(readyQueue, preempted)
			preempted = nil
		}
		if len(readyQueue) == 0 {
			if !sim.HasPending() {
				break
			}
			sim.AdvanceToNextArrival()
			continue
		}

		proccess := readyQueue[0]
		readyQueue = readyQueue[1:]
		sim.Run(proccess, min(timeQuantum, proccess.Remaining))
		if proccess.Remaining > 0 {
			preempted = proccess
		}
	}

	return generateResponse(sim)
}
