package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompress(t *testing.T) {
	var testCases = []struct {
		description string
		input       []TimelineBlock
		expect      []TimelineBlock
	}{
		{
			description: "unit granularity runs collapse",
			input: []TimelineBlock{
				NewIdleBlock(0, 1), NewIdleBlock(1, 2),
				NewProcessBlock("P1", 2, 3), NewProcessBlock("P1", 3, 4), NewProcessBlock("P1", 4, 5),
				NewProcessBlock("P2", 5, 6),
			},
			expect: []TimelineBlock{NewIdleBlock(0, 2), NewProcessBlock("P1", 2, 5), NewProcessBlock("P2", 5, 6)},
		},
		{
			description: "idle and a process labelled IDLE stay apart",
			input:       []TimelineBlock{NewIdleBlock(0, 2), NewProcessBlock(IdleLabel, 2, 4)},
			expect:      []TimelineBlock{NewIdleBlock(0, 2), NewProcessBlock(IdleLabel, 2, 4)},
		},
		{
			description: "empty blocks are dropped",
			input:       []TimelineBlock{NewProcessBlock("P1", 0, 2), NewIdleBlock(2, 2), NewProcessBlock("P1", 2, 3)},
			expect:      []TimelineBlock{NewProcessBlock("P1", 0, 3)},
		},
		{
			description: "nothing to compress",
			input:       nil,
			expect:      []TimelineBlock{},
		},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, Compress(testCase.input), testCase.description)
	}
}

func TestMarkers(t *testing.T) {
	markers, total := Markers([]TimelineBlock{NewIdleBlock(0, 2), NewProcessBlock("P1", 2, 5), NewProcessBlock("P2", 5, 9)})
	assert.Equal(t, []int{0, 2, 5, 9}, markers)
	assert.Equal(t, 9, total)

	markers, total = Markers(nil)
	assert.Empty(t, markers)
	assert.Equal(t, 0, total)
}

func TestMeasureCpu(t *testing.T) {
	metric := MeasureCpu([]TimelineBlock{NewIdleBlock(0, 2), NewProcessBlock("P1", 2, 5), NewIdleBlock(5, 6), NewProcessBlock("P2", 6, 10)})
	assert.Equal(t, CpuMetric{TotalTime: 10, UtilizationTime: 7, IdleTime: 3}, metric)
	assert.InDelta(t, 0.7, metric.Utilization(), 1e-9)
	assert.InDelta(t, 0.2, metric.Throughput(2), 1e-9)

	empty := MeasureCpu(nil)
	assert.Zero(t, empty.Utilization())
	assert.Zero(t, empty.Throughput(0))
}

func TestNewScheduledProcess(t *testing.T) {
	p := NewScheduledProcess(Process{ID: "P2", Arrival: 2, Burst: 2}, 6)
	assert.Equal(t, 4, p.Turnaround)
	assert.Equal(t, 2, p.Waiting)
	assert.Equal(t, 4, p.Start())
	assert.Equal(t, p.Waiting, p.Response())
}
