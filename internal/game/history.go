package game

// HistorySize is the number of recent results kept per session.
const HistorySize = 5

// History is a fixed-capacity, newest-first buffer of round results. The
// zero value is ready to use; Record is the only mutating operation.
type History struct {
	entries []Result
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{entries: make([]Result, 0, HistorySize)}
}

// Record inserts the result at the front, shifting existing entries toward
// the tail and silently discarding the oldest one once the buffer holds
// HistorySize results.
func (h *History) Record(r Result) {
	h.entries = append(h.entries, Result{})
	copy(h.entries[1:], h.entries)
	h.entries[0] = r
	if len(h.entries) > HistorySize {
		h.entries = h.entries[:HistorySize]
	}
}

// Entries returns a newest-first snapshot of the recorded results.
func (h *History) Entries() []Result {
	out := make([]Result, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded results.
func (h *History) Len() int {
	return len(h.entries)
}
