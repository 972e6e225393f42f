package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cpu-scheduler/internal/responses"

	"github.com/olekukonko/tablewriter"
)

// Gantt draws the timeline as a bar chart. Each block takes scale columns per time unit and at
// least one column; ticks are printed under the boundary they belong to.
func Gantt(w io.Writer, timeline []responses.TimelineResponse, scale int) {
	if scale < 1 {
		scale = 1
	}
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	var labels, bars strings.Builder
	boundaries := make([]int, 0, len(timeline)+1)
	labels.WriteString("|")
	bars.WriteString("|")
	column := 0
	boundaries = append(boundaries, column)
	for _, block := range timeline {
		width := (block.End - block.Start) * scale
		if width < 1 {
			width = 1
		}
		labels.WriteString(center(block.Label, width))
		labels.WriteString("|")

		fill := "#"
		if block.Idle {
			fill = "."
		}
		bars.WriteString(strings.Repeat(fill, width))
		bars.WriteString("|")

		column += width + 1
		boundaries = append(boundaries, column)
	}

	ticks := make([]byte, 0, column+8)
	values := make([]int, 0, len(timeline)+1)
	values = append(values, timeline[0].Start)
	for _, block := range timeline {
		values = append(values, block.End)
	}
	for i, at := range boundaries {
		tick := strconv.Itoa(values[i])
		if len(ticks) > at {
			continue
		}
		for len(ticks) < at {
			ticks = append(ticks, ' ')
		}
		ticks = append(ticks, tick...)
	}

	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, string(ticks))
	_, _ = fmt.Fprintln(w)
}

// Table prints per process metrics with the averages in the footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Wait", "Turnaround"})
	for _, p := range response.ScheduledProcesses {
		table.Append([]string{
			p.ProcessId,
			strconv.Itoa(p.ArrivalTime),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.CompletionTime),
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnAroundTime),
		})
	}
	table.SetFooter([]string{"", "",
		fmt.Sprintf("Utilization %.2f", response.CpuUtilization),
		fmt.Sprintf("Throughput %.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average %.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average %.2f", response.AverageTurnAroundTime),
	})
	table.Render()
}

// center pads or cuts label to width columns, counting runes rather than bytes.
func center(label string, width int) string {
	runes := []rune(label)
	if len(runes) > width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", width-left-len(runes))
}
