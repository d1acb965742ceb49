package util

import (
	"math"

	"cpu-sched-sim/internal/responses"
)

// CalculateAverage returns the mean waiting and turnaround times over
// all proccess details, rounded to 2 decimals for display.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = Round2(waitingTimeSum / proccessCount)
	averageTurnAroundTime = Round2(turnAroundTimeSum / proccessCount)
	return
}

// Round2 rounds to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
