package util

import (
	"testing"

	"cpu-scheduler/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAverage(t *testing.T) {
	var testCases = []struct {
		description      string
		input            []core.ScheduledProcess
		expectWaiting    float64
		expectResponse   float64
		expectTurnAround float64
	}{
		{
			description: "back to back",
			input: []core.ScheduledProcess{
				core.NewScheduledProcess(core.Process{ID: "P1", Arrival: 0, Burst: 4}, 4),
				core.NewScheduledProcess(core.Process{ID: "P2", Arrival: 2, Burst: 2}, 6),
			},
			expectWaiting:    1,
			expectResponse:   1,
			expectTurnAround: 4,
		},
		{
			description: "fractional",
			input: []core.ScheduledProcess{
				core.NewScheduledProcess(core.Process{ID: "P1", Arrival: 0, Burst: 3}, 3),
				core.NewScheduledProcess(core.Process{ID: "P2", Arrival: 0, Burst: 2}, 5),
				core.NewScheduledProcess(core.Process{ID: "P3", Arrival: 1, Burst: 1}, 6),
			},
			expectWaiting:    (0 + 3 + 4) / 3.0,
			expectResponse:   (0 + 3 + 4) / 3.0,
			expectTurnAround: (3 + 5 + 5) / 3.0,
		},
		{
			description: "empty",
		},
	}

	for _, testCase := range testCases {
		waiting, response, turnAround := CalculateAverage(testCase.input)
		assert.InDelta(t, testCase.expectWaiting, waiting, 1e-9, testCase.description)
		assert.InDelta(t, testCase.expectResponse, response, 1e-9, testCase.description)
		assert.InDelta(t, testCase.expectTurnAround, turnAround, 1e-9, testCase.description)
	}
}
