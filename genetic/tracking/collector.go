package tracking

// Collector accumulates per-tick metrics over one generation
type Collector struct {
	ticks        int
	sums         map[string]float64
	mins         map[string]float64
	maxs         map[string]float64
	minSet       map[string]bool
	firstArrival int
}

// NewCollector creates a reusable collector
func NewCollector() *Collector {
	return &Collector{
		sums:         make(map[string]float64),
		mins:         make(map[string]float64),
		maxs:         make(map[string]float64),
		minSet:       make(map[string]bool),
		firstArrival: -1,
	}
}

// Collect records metrics for a single tick
func (c *Collector) Collect(metrics MetricBundle) {
	for key, value := range metrics {
		c.sums[key] += value

		if !c.minSet[key] || value < c.mins[key] {
			c.mins[key] = value
			c.minSet[key] = true
		}
		if value > c.maxs[key] {
			c.maxs[key] = value
		}
	}

	if c.firstArrival < 0 && metrics[MetricCompleted] > 0 {
		c.firstArrival = c.ticks
	}
	c.ticks++
}

// Finalize returns accumulated metrics merged with end-of-generation metrics
// Per-tick series become avg_, min_ and max_ prefixed keys
func (c *Collector) Finalize(generationEnd MetricBundle) MetricBundle {
	result := make(MetricBundle)

	if c.ticks > 0 {
		for key, sum := range c.sums {
			result["avg_"+key] = sum / float64(c.ticks)
		}
	}
	for key, val := range c.mins {
		result["min_"+key] = val
	}
	for key, val := range c.maxs {
		result["max_"+key] = val
	}
	if c.firstArrival >= 0 {
		result[MetricFirstArrival] = float64(c.firstArrival)
	}

	for key, val := range generationEnd {
		result[key] = val
	}

	return result
}

// Ticks returns the number of collected ticks since the last reset
func (c *Collector) Ticks() int {
	return c.ticks
}

// Reset clears accumulated state for reuse
func (c *Collector) Reset() {
	c.ticks = 0
	c.firstArrival = -1
	clear(c.sums)
	clear(c.mins)
	clear(c.maxs)
	clear(c.minSet)
}
