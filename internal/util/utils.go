package util

import "cpu-scheduler/internal/core"

// CalculateAverage returns the mean waiting, response and turnaround time, zero for an empty slice.
func CalculateAverage(proccessDetails []core.ScheduledProcess) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0
	}
	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.Waiting
		responseTimeSum += proccess.Response()
		turnAroundTimeSum += proccess.Turnaround
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageResponseTime = float64(responseTimeSum) / proccessCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}
