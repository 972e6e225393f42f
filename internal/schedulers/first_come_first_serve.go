package schedulers

import (
	"fmt"
	"math"
	"strings"

	"cpu-scheduler/internal/core"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// arrivalKey orders the run queue: earliest arrival first, then process id.
type arrivalKey struct {
	arrival int
	id      string
}

func arrivalOrder(a, b interface{}) int {
	ka, kb := a.(arrivalKey), b.(arrivalKey)
	switch {
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	default:
		return strings.Compare(ka.id, kb.id)
	}
}

// ScheduleFirstComeFirstServe runs the processes non-preemptively in arrival order, ties broken by id.
// The input slice is not modified and no state outlives the call.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.SchedulingResult, error) {
	runQueue, err := newRunQueue(processes)
	if err != nil {
		return core.SchedulingResult{}, err
	}

	scheduled := make([]core.ScheduledProcess, 0, len(processes))
	intervals := make([]core.TimelineBlock, 0, 2*len(processes))

	clock := 0
	it := runQueue.Iterator()
	for it.Next() {
		process := it.Value().(core.Process)

		if process.Arrival > clock {
			intervals = append(intervals, core.NewIdleBlock(clock, process.Arrival))
			clock = process.Arrival
		}

		if process.Burst > math.MaxInt-clock {
			return core.SchedulingResult{}, fmt.Errorf("%w: process %q would complete after the largest representable time",
				core.ErrInvalidInput, process.ID)
		}
		completion := clock + process.Burst
		intervals = append(intervals, core.NewProcessBlock(process.ID, clock, completion))
		scheduled = append(scheduled, core.NewScheduledProcess(process, completion))
		clock = completion
	}

	timeline := core.Compress(intervals)
	markers, totalTime := core.Markers(timeline)

	return core.SchedulingResult{
		ScheduledProcesses: scheduled,
		Timeline:           timeline,
		TimeMarkers:        markers,
		TotalTime:          totalTime,
	}, nil
}

// newRunQueue checks the structural preconditions and orders the processes by (arrival, id).
func newRunQueue(processes []core.Process) (*redblacktree.Tree, error) {
	if len(processes) == 0 {
		return nil, fmt.Errorf("%w: no processes to schedule", core.ErrInvalidInput)
	}

	seen := hashset.New()
	runQueue := redblacktree.NewWith(arrivalOrder)
	for i, process := range processes {
		switch {
		case process.ID == "":
			return nil, fmt.Errorf("%w: process #%d has an empty id", core.ErrInvalidInput, i)
		case seen.Contains(process.ID):
			return nil, fmt.Errorf("%w: duplicate process id %q", core.ErrInvalidInput, process.ID)
		case process.Arrival < 0:
			return nil, fmt.Errorf("%w: process %q arrives at %d", core.ErrInvalidInput, process.ID, process.Arrival)
		case process.Burst <= 0:
			return nil, fmt.Errorf("%w: process %q has burst time %d", core.ErrInvalidInput, process.ID, process.Burst)
		}
		seen.Add(process.ID)
		runQueue.Put(arrivalKey{arrival: process.Arrival, id: process.ID}, process)
	}
	return runQueue, nil
}
