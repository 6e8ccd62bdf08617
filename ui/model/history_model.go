package model

import (
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
)

// DefaultHistorySize bounds the history when no capacity is configured.
const DefaultHistorySize = 10

// HistoryModel keeps the most recent captured snapshots for the history row.
// Consecutive captures of the same color collapse into one entry; the oldest
// entry is evicted once the ring is full.
// No synchronization needed: updates occur on the UI thread tick.
type HistoryModel struct {
	limit int
	items []picker.Snapshot
}

func NewHistoryModel(capacity int) *HistoryModel {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &HistoryModel{limit: capacity}
}

// Add records an accepted capture.
func (m *HistoryModel) Add(s picker.Snapshot) {
	if m == nil {
		return
	}
	if n := len(m.items); n > 0 && m.items[n-1].Color == s.Color {
		return
	}
	m.items = append(m.items, s)
	if len(m.items) > m.limit {
		m.items = m.items[len(m.items)-m.limit:]
	}
}

// Items returns the recorded snapshots, newest first.
func (m *HistoryModel) Items() []picker.Snapshot {
	if m == nil {
		return nil
	}
	out := make([]picker.Snapshot, len(m.items))
	for i, s := range m.items {
		out[len(out)-1-i] = s
	}
	return out
}

// Latest returns the most recent snapshot, if any.
func (m *HistoryModel) Latest() (picker.Snapshot, bool) {
	if m == nil || len(m.items) == 0 {
		return picker.Snapshot{}, false
	}
	return m.items[len(m.items)-1], true
}

func (m *HistoryModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// Clear drops all recorded snapshots.
func (m *HistoryModel) Clear() {
	if m == nil {
		return
	}
	m.items = m.items[:0]
}
