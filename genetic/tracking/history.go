package tracking

// History keeps finalized per-generation bundles in order, dropping the oldest past capacity
type History struct {
	capacity int
	entries  []MetricBundle
}

// NewHistory creates a history bounded to capacity entries, non-positive means unbounded
func NewHistory(capacity int) *History {
	return &History{capacity: capacity}
}

// Record appends a copy of b
func (h *History) Record(b MetricBundle) {
	h.entries = append(h.entries, b.Clone())
	if h.capacity > 0 && len(h.entries) > h.capacity {
		drop := len(h.entries) - h.capacity
		clear(h.entries[:drop])
		h.entries = h.entries[drop:]
	}
}

func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent bundle
func (h *History) Last() (MetricBundle, bool) {
	if len(h.entries) == 0 {
		return nil, false
	}
	return h.entries[len(h.entries)-1], true
}

// Series returns values of key across entries, missing values reported as defaultVal
func (h *History) Series(key string, defaultVal float64) []float64 {
	series := make([]float64, len(h.entries))
	for i, b := range h.entries {
		series[i] = b.Get(key, defaultVal)
	}
	return series
}

// Best returns the highest recorded value of key and its entry index, -1 when absent
func (h *History) Best(key string) (float64, int) {
	best, idx := 0.0, -1
	for i, b := range h.entries {
		v, ok := b[key]
		if !ok {
			continue
		}
		if idx < 0 || v > best {
			best, idx = v, i
		}
	}
	return best, idx
}
