package schedulers

import (
	"log"

	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

// ScheduleShortestRemainingTime is the preemptive variant of SJF: it
// always runs the ready process with the least remaining work, but
// only until the next arrival, where selection is re-evaluated and a
// newly arrived shorter job may take over.
func ScheduleShortestRemainingTime(request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	log.Println("running srtf algorithm ...")

	sim, err := core.NewSimulation(request.Jobs)
	if err != nil {
		return nil, err
	}

	readyQueue := core.NewReadyQueue(func(p *core.Process) int { return p.Remaining })
	for readyQueue.Len() > 0 || sim.HasPending() {
		for _, proccess := range sim.AdmitArrived() {
			readyQueue.Push(proccess)
		}
		if readyQueue.Len() == 0 {
			sim.AdvanceToNextArrival()
			continue
		}

		proccess := readyQueue.Pop()
		runTime := proccess.Remaining
		if sim.HasPending() {
			runTime = min(runTime, sim.NextArrival()-sim.Now())
		}
		sim.Run(proccess, runTime)
		if proccess.Remaining > 0 {
			readyQueue.Push(proccess)
		}
	}

	return generateResponse(sim)
}
