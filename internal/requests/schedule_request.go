package requests

// Job is one process as submitted by a client. Arrival and burst are pointers so that a missing
// field can be told apart from an explicit zero.
type Job struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime *int   `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   *int   `json:"burst_time" yaml:"burst_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// NewJob builds a fully populated job.
func NewJob(processId string, arrivalTime, burstTime int) Job {
	return Job{ProcessId: processId, ArrivalTime: &arrivalTime, BurstTime: &burstTime}
}
