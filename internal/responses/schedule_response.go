package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	WaitingTime    int    `json:"waiting_time"`
	TurnAroundTime int    `json:"turn_around_time"`
}

type TimelineResponse struct {
	Label string `json:"label"`
	Idle  bool   `json:"idle"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

type ScheduleResponse struct {
	ScheduledProcesses    []ProcessResponse  `json:"scheduled_processes"`
	Timeline              []TimelineResponse `json:"timeline"`
	TimeMarkers           []int              `json:"time_markers"`
	TotalTime             int                `json:"total_time"`
	IdleTime              int                `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
}

func NewProcessResponse(p core.ScheduledProcess) ProcessResponse {
	return ProcessResponse{
		ProcessId:      p.ID,
		ArrivalTime:    p.Arrival,
		BurstTime:      p.Burst,
		CompletionTime: p.Completion,
		ResponseTime:   p.Response(),
		WaitingTime:    p.Waiting,
		TurnAroundTime: p.Turnaround,
	}
}

func NewTimelineResponse(b core.TimelineBlock) TimelineResponse {
	return TimelineResponse{Label: b.Label, Idle: b.Idle, Start: b.Start, End: b.End}
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
