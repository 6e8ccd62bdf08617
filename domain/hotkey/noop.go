package hotkey

import "log/slog"

// noopStrategy is the end of the degradation chain: hotkeys are off and
// the rest of the application keeps running.
type noopStrategy struct {
	logger *slog.Logger
}

func newNoopStrategy(logger *slog.Logger) Strategy { return &noopStrategy{logger: logger} }

func (s *noopStrategy) Start() bool {
	if s.logger != nil {
		s.logger.Warn("global hotkeys disabled", "error", ErrStrategyUnavailable)
	}
	return false
}

func (s *noopStrategy) Stop()        {}
func (s *noopStrategy) Alive() bool  { return false }
func (s *noopStrategy) Name() string { return "noop" }

// unavailableStrategy stands in for a platform strategy that cannot run
// in this build. Start always fails with the recorded reason.
type unavailableStrategy struct {
	name   string
	reason error
	logger *slog.Logger
}

func (s *unavailableStrategy) Start() bool {
	if s.logger != nil {
		s.logger.Debug("strategy skipped", "strategy", s.name, "error", s.reason)
	}
	return false
}

func (s *unavailableStrategy) Stop()        {}
func (s *unavailableStrategy) Alive() bool  { return false }
func (s *unavailableStrategy) Name() string { return s.name }
