package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// ScheduleRequest converts validated jobs to processes, schedules them and builds the response.
// Jobs must have passed validation; missing arrival or burst times are treated as invalid input.
func ScheduleRequest(jobs []requests.Job) (responses.ScheduleResponse, error) {
	processes, err := toProcesses(jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	result, err := ScheduleFirstComeFirstServe(processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response := generateResponse(result)
	log.Printf("fcfs scheduled %d processes, total time = %d, idle time = %d",
		len(result.ScheduledProcesses), response.TotalTime, response.IdleTime)
	return response, nil
}

func toProcesses(jobs []requests.Job) ([]core.Process, error) {
	processes := make([]core.Process, 0, len(jobs))
	for _, job := range jobs {
		if job.ArrivalTime == nil || job.BurstTime == nil {
			return nil, fmt.Errorf("%w: process %q is missing its arrival or burst time", core.ErrInvalidInput, job.ProcessId)
		}
		processes = append(processes, core.Process{
			ID:      job.ProcessId,
			Arrival: *job.ArrivalTime,
			Burst:   *job.BurstTime,
		})
	}
	return processes, nil
}

func generateResponse(result core.SchedulingResult) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(result.ScheduledProcesses)
	cpuMetric := core.MeasureCpu(result.Timeline)

	details := make([]responses.ProcessResponse, 0, len(result.ScheduledProcesses))
	for _, p := range result.ScheduledProcesses {
		details = append(details, responses.NewProcessResponse(p))
	}
	timeline := make([]responses.TimelineResponse, 0, len(result.Timeline))
	for _, b := range result.Timeline {
		timeline = append(timeline, responses.NewTimelineResponse(b))
	}

	return responses.ScheduleResponse{
		ScheduledProcesses:    details,
		Timeline:              timeline,
		TimeMarkers:           result.TimeMarkers,
		TotalTime:             result.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(result.ScheduledProcesses)),
	}
}
