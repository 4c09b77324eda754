package tracking

// MetricBundle is a generic container for named metrics
// Keys are metric names, values are float64 measurements
type MetricBundle map[string]float64

// Standard metric keys (conventions)
const (
	MetricGeneration  = "generation"
	MetricBestFitness = "best_fitness"
	MetricAvgFitness  = "avg_fitness"
	MetricSuccessRate = "success_rate"
	MetricCompleted   = "completed"
	MetricCrashed     = "crashed"
	MetricActive      = "active"
	// MetricFirstArrival is the first tick any ant reached the target, absent when none did
	MetricFirstArrival = "first_arrival"
)

// Get returns metric value or default if not present
func (b MetricBundle) Get(key string, defaultVal float64) float64 {
	if v, ok := b[key]; ok {
		return v
	}
	return defaultVal
}

// Merge combines two bundles, other values override existing
func (b MetricBundle) Merge(other MetricBundle) MetricBundle {
	result := make(MetricBundle, len(b)+len(other))
	for k, v := range b {
		result[k] = v
	}
	for k, v := range other {
		result[k] = v
	}
	return result
}

// Clone creates a deep copy
func (b MetricBundle) Clone() MetricBundle {
	result := make(MetricBundle, len(b))
	for k, v := range b {
		result[k] = v
	}
	return result
}
