package core

import (
	"sort"
)

// IdleLabel is the label carried by blocks where no process held the cpu.
const IdleLabel = "IDLE"

// TimelineBlock is one maximal run of cpu time attributed to a process or to idleness.
// Start is inclusive, End exclusive.
type TimelineBlock struct {
	Label string `json:"label"`
	Idle  bool   `json:"idle"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// NewIdleBlock creates an idle block for [start, end).
func NewIdleBlock(start, end int) TimelineBlock {
	return TimelineBlock{Label: IdleLabel, Idle: true, Start: start, End: end}
}

// NewProcessBlock creates a block attributing [start, end) to the process id.
func NewProcessBlock(id string, start, end int) TimelineBlock {
	return TimelineBlock{Label: id, Start: start, End: end}
}

func (b TimelineBlock) Duration() int {
	return b.End - b.Start
}

// sameOwner is true when both blocks belong to the same process, or are both idle.
func (b TimelineBlock) sameOwner(o TimelineBlock) bool {
	return b.Idle == o.Idle && b.Label == o.Label
}

// Compress merges adjacent blocks of the same owner into a single block.
// blocks must already be in chronological order.
func Compress(blocks []TimelineBlock) []TimelineBlock {
	compressed := make([]TimelineBlock, 0, len(blocks))
	for _, block := range blocks {
		if block.Duration() <= 0 {
			continue
		}
		if n := len(compressed); n > 0 {
			last := &compressed[n-1]
			if last.sameOwner(block) && last.End == block.Start {
				last.End = block.End
				continue
			}
		}
		compressed = append(compressed, block)
	}
	return compressed
}

// Markers returns every block boundary sorted ascending without duplicates, and the largest one
// as the total time. Both are zero valued when there are no blocks.
func Markers(blocks []TimelineBlock) ([]int, int) {
	seen := make(map[int]struct{}, len(blocks)+1)
	markers := make([]int, 0, len(blocks)+1)
	for _, block := range blocks {
		for _, t := range [2]int{block.Start, block.End} {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			markers = append(markers, t)
		}
	}
	sort.Ints(markers)

	totalTime := 0
	if len(markers) > 0 {
		totalTime = markers[len(markers)-1]
	}
	return markers, totalTime
}
