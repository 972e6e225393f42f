package core

// CpuMetric summarises how the cpu spent a timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu walks the timeline and splits its time into busy and idle.
func MeasureCpu(timeline []TimelineBlock) CpuMetric {
	var metric CpuMetric
	for _, block := range timeline {
		if block.Idle {
			metric.IdleTime += block.Duration()
		} else {
			metric.UtilizationTime += block.Duration()
		}
		if block.End > metric.TotalTime {
			metric.TotalTime = block.End
		}
	}
	return metric
}

// Utilization is the busy share of the total time, 0 for an empty timeline.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is the number of completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}
