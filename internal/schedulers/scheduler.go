package schedulers

import (
	"fmt"

	"cpu-sched-sim/internal/requests"
	"cpu-sched-sim/internal/responses"
)

const (
	AlgorithmFirstComeFirstServe   = "fcfs"
	AlgorithmShortestJobFirst      = "sjf"
	AlgorithmPriority              = "priority"
	AlgorithmRoundRobin            = "rr"
	AlgorithmShortestRemainingTime = "srtf"
)

// Algorithms lists the supported algorithm names in display order.
var Algorithms = []string{
	AlgorithmFirstComeFirstServe,
	AlgorithmShortestJobFirst,
	AlgorithmPriority,
	AlgorithmRoundRobin,
	AlgorithmShortestRemainingTime,
}

// Schedule dispatches a request to the named algorithm. The time
// quantum is read from the request and only used by round-robin.
func Schedule(algorithm string, request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	switch algorithm {
	case AlgorithmFirstComeFirstServe:
		return ScheduleFirstComeFirstServe(request)
	case AlgorithmShortestJobFirst:
		return ScheduleShortestJobFirst(request)
	case AlgorithmPriority:
		return SchedulePriority(request)
	case AlgorithmRoundRobin:
		return ScheduleRoundRobin(request, request.TimeQuantum)
	case AlgorithmShortestRemainingTime:
		return ScheduleShortestRemainingTime(request)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
