package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequest(t *testing.T) {
	response, err := ScheduleRequest([]requests.Job{
		requests.NewJob("P1", 0, 4),
		requests.NewJob("P2", 2, 2),
	})
	require.NoError(t, err)

	assert.Equal(t, []responses.ProcessResponse{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 4, CompletionTime: 4, ResponseTime: 0, WaitingTime: 0, TurnAroundTime: 4},
		{ProcessId: "P2", ArrivalTime: 2, BurstTime: 2, CompletionTime: 6, ResponseTime: 2, WaitingTime: 2, TurnAroundTime: 4},
	}, response.ScheduledProcesses)
	assert.Equal(t, []responses.TimelineResponse{
		{Label: "P1", Start: 0, End: 4},
		{Label: "P2", Start: 4, End: 6},
	}, response.Timeline)
	assert.Equal(t, []int{0, 4, 6}, response.TimeMarkers)
	assert.Equal(t, 6, response.TotalTime)
	assert.Equal(t, 0, response.IdleTime)
	assert.InDelta(t, 1.0, response.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 1.0, response.AverageResponseTime, 1e-9)
	assert.InDelta(t, 4.0, response.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 1.0, response.CpuUtilization, 1e-9)
	assert.InDelta(t, 2.0/6.0, response.CpuThroughput, 1e-9)
}

func TestScheduleRequest_IdleTime(t *testing.T) {
	response, err := ScheduleRequest([]requests.Job{requests.NewJob("P1", 2, 3)})
	require.NoError(t, err)
	assert.Equal(t, 2, response.IdleTime)
	assert.InDelta(t, 0.6, response.CpuUtilization, 1e-9)
	assert.True(t, response.Timeline[0].Idle)
	assert.Equal(t, core.IdleLabel, response.Timeline[0].Label)
}

func TestScheduleRequest_MissingFields(t *testing.T) {
	burst := 3
	_, err := ScheduleRequest([]requests.Job{{ProcessId: "P1", BurstTime: &burst}})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
