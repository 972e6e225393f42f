package core

// Process is one schedulable unit as handed over by the validator.
type Process struct {
	ID      string `json:"process_id"`
	Arrival int    `json:"arrival_time"`
	Burst   int    `json:"burst_time"`
}

// ScheduledProcess is a Process after it ran to completion.
type ScheduledProcess struct {
	Process
	Completion int `json:"completion_time"`
	Waiting    int `json:"waiting_time"`
	Turnaround int `json:"turn_around_time"`
}

// NewScheduledProcess derives turnaround and waiting time from the completion time.
func NewScheduledProcess(p Process, completion int) ScheduledProcess {
	turnaround := completion - p.Arrival
	return ScheduledProcess{
		Process:    p,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
	}
}

// Start returns the time the process got the cpu.
func (s ScheduledProcess) Start() int {
	return s.Completion - s.Burst
}

// Response is the delay between arrival and first dispatch. Without preemption it equals Waiting.
func (s ScheduledProcess) Response() int {
	return s.Start() - s.Arrival
}

// SchedulingResult is everything a single scheduling run produces.
type SchedulingResult struct {
	ScheduledProcesses []ScheduledProcess `json:"scheduled_processes"`
	Timeline           []TimelineBlock    `json:"timeline"`
	TimeMarkers        []int              `json:"time_markers"`
	TotalTime          int                `json:"total_time"`
}
