package schedulers

import (
	"log"

	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// ScheduleShortestJobFirst picks the ready process with the smallest
// burst time and runs it to completion before re-evaluating. A shorter
// job arriving mid-execution never interrupts the running one.
func ScheduleShortestJobFirst(request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")

	sim, err := core.NewSimulation(request.Jobs)
	if err != nil {
		return nil, err
	}

	readyQueue := core.NewReadyQueue(func(p *core.Process) int { return p.Job.BurstTime })
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
