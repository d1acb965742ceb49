package schedulers

import (
	"cpu-sched-sim/internal/core"
	"cpu-sched-sim/internal/responses"
	"cpu-sched-sim/internal/util"
)

func generateResponse(sim *core.Simulation) (*responses.ScheduleResponse, error) {
	completed, err := sim.Completed()
	if err != nil {
		return nil, err
	}

	proccessDetails := make([]responses.ProcessResponse, 0, len(completed))
	for _, proccess := range completed {
		proccessDetails = append(proccessDetails, generateProcessDetails(proccess))
	}
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	timeline := sim.Timeline()
	gantt := make([]responses.GanttEntry, 0, len(timeline))
	for _, slice := range timeline {
		gantt = append(gantt, responses.GanttEntry{
			ProcessId: slice.ProcessId,
			StartTime: slice.Start,
			EndTime:   slice.End,
		})
	}

	return &responses.ScheduleResponse{
		Gantt:                 gantt,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Details:               proccessDetails,
	}, nil
}

func generateProcessDetails(proccess *core.Process) responses.ProcessResponse {
	turnAroundTime := proccess.CompletionTime - proccess.Job.ArrivalTime
	return responses.ProcessResponse{
		ProcessId:      proccess.Job.ProcessId,
		StartTime:      proccess.StartTime,
		CompletionTime: proccess.CompletionTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - proccess.Job.BurstTime,
	}
}
