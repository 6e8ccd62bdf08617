//go:build !windows

package hotkey

import (
	"fmt"
	"log/slog"
)

// Non-Windows builds carry no capture strategies; the manager degrades
// straight to unavailable and the rest of the picker still works.

func newNativeStrategy(bindings []Binding, sink Sink, opts Options, logger *slog.Logger) Strategy {
	return &unavailableStrategy{
		name:   "native",
		reason: fmt.Errorf("%w: native registration requires Windows", ErrStrategyUnavailable),
		logger: logger,
	}
}

func asyncKeyState(vk uint32) (bool, error) {
	return false, fmt.Errorf("%w: key-state polling requires Windows", ErrStrategyUnavailable)
}
