package model

import (
	"image"
	"testing"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
)

func snap(r, g, b uint8, at int64) picker.Snapshot {
	return picker.Snapshot{
		Pos:   image.Pt(int(r), int(g)),
		Color: colorconv.RGB{R: r, G: g, B: b},
		At:    time.Unix(at, 0),
	}
}

func TestHistoryModel_NewestFirst(t *testing.T) {
	m := NewHistoryModel(5)
	m.Add(snap(10, 0, 0, 1))
	m.Add(snap(20, 0, 0, 2))
	m.Add(snap(30, 0, 0, 3))

	items := m.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Color.R != 30 || items[2].Color.R != 10 {
		t.Fatalf("wrong order: %v", items)
	}
	latest, ok := m.Latest()
	if !ok || latest.Color.R != 30 {
		t.Fatalf("Latest = %v ok=%v, want newest", latest, ok)
	}
}

func TestHistoryModel_EvictsOldestAtCapacity(t *testing.T) {
	m := NewHistoryModel(3)
	for i := 1; i <= 5; i++ {
		m.Add(snap(uint8(i*10), 0, 0, int64(i)))
	}
	items := m.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	// 10 and 20 evicted; 50 newest.
	if items[0].Color.R != 50 || items[2].Color.R != 30 {
		t.Fatalf("eviction kept the wrong entries: %v", items)
	}
}

func TestHistoryModel_CollapsesConsecutiveDuplicates(t *testing.T) {
	m := NewHistoryModel(5)
	m.Add(snap(10, 20, 30, 1))
	m.Add(snap(10, 20, 30, 2)) // same color, different position/time
	m.Add(snap(40, 0, 0, 3))
	m.Add(snap(10, 20, 30, 4)) // same color again, but not consecutive

	if m.Len() != 3 {
		t.Fatalf("len = %d, want 3 (one duplicate collapsed)", m.Len())
	}
}

func TestHistoryModel_ClearAndZeroCapacity(t *testing.T) {
	m := NewHistoryModel(0)
	if m.limit != DefaultHistorySize {
		t.Fatalf("limit = %d, want default %d", m.limit, DefaultHistorySize)
	}
	m.Add(snap(1, 2, 3, 1))
	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("len after clear = %d", m.Len())
	}
	if _, ok := m.Latest(); ok {
		t.Fatal("Latest should report empty after clear")
	}
}
