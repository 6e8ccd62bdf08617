// Package bridge hands events from background goroutines to the UI loop.
//
// Hotkey strategies and the manager run off the Tk thread; the bridge is the
// only channel between them and the presentation layer. Events are delivered
// in publish order on the next UI tick.
package bridge

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
)

// DefaultCapacity bounds the queue. A UI loop draining at ~60Hz never lets
// the queue grow past a handful of entries; the bound only matters when the
// Tk thread stalls.
const DefaultCapacity = 64

// Event is a message queued for the UI loop.
type Event interface {
	When() time.Time
}

// PressEvent reports a hotkey press accepted by the manager.
type PressEvent struct {
	Action hotkey.Action
	At     time.Time
}

func (e PressEvent) When() time.Time { return e.At }

// StatusEvent reports a hotkey manager state change.
type StatusEvent struct {
	State    hotkey.ManagerState
	Strategy string
	At       time.Time
}

func (e StatusEvent) When() time.Time { return e.At }

// Stats is a point-in-time snapshot of the bridge counters.
type Stats struct {
	Published uint64
	Dropped   uint64
	Drained   uint64
}

// Bridge is a bounded ordered queue between hotkey goroutines and the Tk
// loop. Publish never blocks: when the queue is full the incoming event is
// discarded, so delivered events keep their original order.
type Bridge struct {
	events    chan Event
	logger    *slog.Logger
	published atomic.Uint64
	dropped   atomic.Uint64
	drained   atomic.Uint64
}

func New(capacity int, logger *slog.Logger) *Bridge {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bridge{events: make(chan Event, capacity), logger: logger}
}

// Publish queues ev for the UI loop and reports whether it was accepted.
// Safe to call from any goroutine.
func (b *Bridge) Publish(ev Event) bool {
	select {
	case b.events <- ev:
		b.published.Add(1)
		return true
	default:
		n := b.dropped.Add(1)
		if b.logger != nil {
			b.logger.Warn("ui event queue full; dropping",
				"event", fmt.Sprintf("%T", ev),
				"dropped", n,
			)
		}
		return false
	}
}

// Drain delivers queued events to fn in order, at most max per call
// (non-positive max means up to the queue capacity). It returns the number
// delivered. Call from the UI loop only.
func (b *Bridge) Drain(fn func(Event), max int) (n int) {
	if fn == nil {
		return 0
	}
	if max <= 0 {
		max = cap(b.events)
	}
	defer func() { b.drained.Add(uint64(n)) }()
	for n < max {
		select {
		case ev := <-b.events:
			fn(ev)
			n++
		default:
			return n
		}
	}
	return n
}

// Pending returns the number of events waiting to be drained.
func (b *Bridge) Pending() int { return len(b.events) }

func (b *Bridge) Stats() Stats {
	return Stats{
		Published: b.published.Load(),
		Dropped:   b.dropped.Load(),
		Drained:   b.drained.Load(),
	}
}
