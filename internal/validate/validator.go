package validate

import (
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// DefaultBurstCeiling is the largest burst time accepted unless configured otherwise.
const DefaultBurstCeiling = 500

// Policy decides what happens to jobs with missing fields.
type Policy string

const (
	// PolicyReject fails the whole request on the first incomplete job.
	PolicyReject Policy = "reject"
	// PolicyFilter silently drops jobs without an arrival or burst time.
	PolicyFilter Policy = "filter"
)

// ParsePolicy maps a configuration value to a Policy, defaulting to PolicyReject.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicyFilter:
		return PolicyFilter, nil
	}
	return "", fmt.Errorf("unknown validation policy %q", value)
}

// FieldError describes one problem with one submitted job.
type FieldError struct {
	Index     int
	ProcessID string
	Field     string
	Reason    string
}

func (e FieldError) Error() string {
	if e.ProcessID == "" {
		return fmt.Sprintf("job #%d: %s %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("job #%d (%s): %s %s", e.Index, e.ProcessID, e.Field, e.Reason)
}

// ValidationErrors collects every problem found in a request.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, e := range v {
		messages = append(messages, e.Error())
	}
	return strings.Join(messages, "; ")
}

// Messages returns one human readable line per problem.
func (v ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(v))
	for _, e := range v {
		messages = append(messages, e.Error())
	}
	return messages
}

type Validator struct {
	burstCeiling int
	policy       Policy
}

// New creates a validator. A burstCeiling <= 0 disables the upper bound on burst time.
func New(burstCeiling int, policy Policy) *Validator {
	if policy == "" {
		policy = PolicyReject
	}
	return &Validator{burstCeiling: burstCeiling, policy: policy}
}

// Validate returns the jobs that may be scheduled. On failure the error wraps core.ErrInvalidInput
// and, when individual jobs are at fault, a ValidationErrors value.
func (v *Validator) Validate(jobs []requests.Job) ([]requests.Job, error) {
	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: at least one process is required", core.ErrInvalidInput)
	}

	var problems ValidationErrors
	accepted := make([]requests.Job, 0, len(jobs))
	ids := make(map[string]int, len(jobs))
	for i, job := range jobs {
		job.ProcessId = strings.TrimSpace(job.ProcessId)
		report := func(field, reason string) {
			problems = append(problems, FieldError{Index: i, ProcessID: job.ProcessId, Field: field, Reason: reason})
		}

		if job.ArrivalTime == nil || job.BurstTime == nil {
			if v.policy == PolicyFilter {
				continue
			}
			if job.ArrivalTime == nil {
				report("arrival_time", "is required")
			}
			if job.BurstTime == nil {
				report("burst_time", "is required")
			}
			continue
		}

		if job.ProcessId == "" {
			report("process_id", "is required")
		} else if first, dup := ids[job.ProcessId]; dup {
			report("process_id", fmt.Sprintf("duplicates job #%d", first))
		} else {
			ids[job.ProcessId] = i
		}
		if *job.ArrivalTime < 0 {
			report("arrival_time", "must be >= 0")
		}
		if *job.BurstTime <= 0 {
			report("burst_time", "must be > 0")
		} else if v.burstCeiling > 0 && *job.BurstTime > v.burstCeiling {
			report("burst_time", fmt.Sprintf("must be <= %d", v.burstCeiling))
		}
		accepted = append(accepted, job)
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidInput, problems)
	}
	if len(accepted) == 0 {
		return nil, fmt.Errorf("%w: no process has both an arrival and a burst time", core.ErrInvalidInput)
	}
	return accepted, nil
}
