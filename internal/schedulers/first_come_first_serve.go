package schedulers

import (
	"log"

	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// ScheduleFirstComeFirstServe dispatches processes strictly in arrival
// order, running each to completion. The clock jumps over idle gaps
// when the next process has not arrived yet.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")

	sim, err := core.NewSimulation(request.Jobs)
	if err != nil {
		return nil, err
	}

	var readyQueue []*core.Process
	for len(readyQueue) > 0 || sim.HasPending() {
		readyQueue = append(readyQueue, sim.AdmitArrived()...)
		if len(readyQueue) == 0 {
			sim.AdvanceToNextArrival()
			continue
		}

		proccess := readyQueue[0]
		readyQueue = readyQueue[1:]
		sim.Run(proccess, proccess.Remaining)
	}

	return generateResponse(sim)
}
