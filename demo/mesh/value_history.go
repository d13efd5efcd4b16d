package mesh

const (
	MAX_HISTORY = 256
)

// ValueHistory keeps the last MAX_HISTORY samples of a measurement.
type ValueHistory struct {
	m_samples  []float64
	m_hsamples int
	m_count    int
}

func NewValueHistory() *ValueHistory {
	return &ValueHistory{m_samples: make([]float64, MAX_HISTORY)}
}

func (h *ValueHistory) AddSample(val float64) {
	h.m_hsamples = (h.m_hsamples + MAX_HISTORY - 1) % MAX_HISTORY
	h.m_samples[h.m_hsamples] = val
	if h.m_count < MAX_HISTORY {
		h.m_count++
	}
}

func (h *ValueHistory) GetSampleCount() int {
	return h.m_count
}

// GetSample returns the i-th most recent sample.
func (h *ValueHistory) GetSample(i int) float64 {
	return h.m_samples[(h.m_hsamples+i)%MAX_HISTORY]
}

func (h *ValueHistory) GetSampleMin() float64 {
	if h.m_count == 0 {
		return 0
	}
	val := h.GetSample(0)
	for i := 1; i < h.m_count; i++ {
		if s := h.GetSample(i); s < val {
			val = s
		}
	}

	return val
}

func (h *ValueHistory) GetSampleMax() float64 {
	if h.m_count == 0 {
		return 0
	}
	val := h.GetSample(0)
	for i := 1; i < h.m_count; i++ {
		if s := h.GetSample(i); s > val {
			val = s
		}
	}

	return val
}

func (h *ValueHistory) GetAverage() float64 {
	if h.m_count == 0 {
		return 0
	}
	val := 0.0
	for i := 0; i < h.m_count; i++ {
		val += h.GetSample(i)
	}

	return val / float64(h.m_count)
}
