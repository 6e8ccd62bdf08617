package app

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	. "modernc.org/tk9.0"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/config"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/debug"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/presenter"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/theme"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/view"
)

type app struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	container *AppContainer
	start     time.Time
	afterID   string

	// hkMu serializes user-driven hotkey lifecycle work that runs off
	// the Tk thread.
	hkMu sync.Mutex
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	theme.SetDark(!a.cfg.LightTheme)

	a.container = BuildContainer(a.cfg, a.logger, a.cfgPath, a.notifier())
	a.container.RootView.Build(
		a.toggleFreeze,
		a.restartHotkeys,
		a.toggleTheme,
		a.exitHandler,
		a.applySettings,
	)
	a.container.Loop.Schedule = a.scheduleUpdate

	if a.cfg.HotkeysEnabled {
		a.container.HotkeysPresenter.Enable()
	} else {
		a.container.UI.SetHotkeyStatus("Hotkeys: disabled", view.LevelWarn)
	}

	if a.cfg.Debug {
		debug.StartRuntimeLogger(debug.DefaultInterval, a.logger)
		debug.StartCounterLogger(debug.DefaultInterval, a.logger, a.counters)
	}

	a.start = time.Now()
	a.scheduleUpdate()

	App.Wait()
}

// update runs one frame: drain bridge events, tick the presenters,
// reschedule. Loop.Tick reschedules through Schedule on the normal
// path; the recover keeps the after-chain alive when a widget op
// panics mid-frame.
func (a *app) update() {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("ui tick panic", "error", r)
			a.scheduleUpdate()
		}
	}()
	a.container.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps every frame on Tk's event loop thread. The tick
	// interval is re-read each frame, so a settings change applies from
	// the next frame on.
	a.afterID = TclAfter(a.cfg.Tick(), func() { a.update() })
}

func (a *app) exitHandler() {
	a.logger.Info("shutting down")
	a.container.HotkeysPresenter.Disable()
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	a.logSessionStats()
	Destroy(App)
}

func (a *app) toggleFreeze() {
	a.container.PickerPresenter.ToggleFreeze()
}

// restartHotkeys runs off the Tk thread: a restart joins the old
// strategy pump for up to the stop timeout, too long for a frame.
// Status changes flow back through the bridge on later ticks.
func (a *app) restartHotkeys() {
	go func() {
		a.hkMu.Lock()
		defer a.hkMu.Unlock()
		a.container.HotkeysPresenter.Restart()
	}()
}

func (a *app) toggleTheme() {
	dark := theme.ToggleDark()
	a.cfg.LightTheme = !dark
	if err := a.cfg.Save(a.cfgPath); err != nil {
		a.logger.Error("config save", "error", err)
	}
}

// applySettings reacts to a saved settings form. Hotkey timings reach
// the manager immediately via Reconfigure and fold into the running
// strategy through a restart; the theme and tick rate apply live.
// History capacity and magnifier shape stay as built until the next
// launch. The form stays locked until the manager settles and the
// status presenter re-enables it.
func (a *app) applySettings() {
	c := a.container
	theme.SetDark(!a.cfg.LightTheme)
	c.Manager.Reconfigure(hotkeyOptions(a.cfg))

	enabled := c.Hotkeys.Enabled()
	want := a.cfg.HotkeysEnabled
	if !enabled && !want {
		return // nothing running, keep the form editable
	}
	c.UI.SettingsEditable(false)
	go func() {
		a.hkMu.Lock()
		defer a.hkMu.Unlock()
		switch {
		case want && !enabled:
			c.HotkeysPresenter.Enable()
		case !want && enabled:
			c.HotkeysPresenter.Disable()
		default:
			c.HotkeysPresenter.Restart()
		}
	}()
}

// notifier returns the desktop notification hook. The toggle is read
// at call time so a settings change applies immediately.
func (a *app) notifier() presenter.Notifier {
	return func(title, message string) {
		if !a.cfg.Notifications {
			return
		}
		if err := beeep.Notify(title, message, ""); err != nil {
			a.logger.Warn("desktop notification", "error", err)
		}
	}
}

// counters feeds the debug counter logger. It runs on the logger
// goroutine, so only atomic-backed sources may appear here.
func (a *app) counters() []any {
	c := a.container
	sst := c.Sampler.Stats()
	bst := c.Bridge.Stats()
	rt := c.Manager.Runtime()
	return []any{
		"samples", sst.Samples,
		"sample_fallbacks", sst.Fallbacks,
		"sample_failures", sst.Failures,
		"avg_sample", sst.AvgSample,
		"events_published", bst.Published,
		"events_dropped", bst.Dropped,
		"events_drained", bst.Drained,
		"presses_debounced", c.Manager.Debounced(),
		"hotkey_state", rt.State.String(),
		"hotkey_strategy", rt.Strategy,
		"health_failures", rt.ConsecutiveFailures,
		"hotkey_restarts", c.Monitor.Restarts(),
	}
}

func (a *app) logSessionStats() {
	c := a.container
	sst := c.Sampler.Stats()
	bst := c.Bridge.Stats()
	a.logger.Info("session stats",
		"uptime", time.Since(a.start).Round(time.Second),
		"samples", sst.Samples,
		"sample_fallbacks", sst.Fallbacks,
		"sample_failures", sst.Failures,
		"events_published", bst.Published,
		"events_dropped", bst.Dropped,
		"presses_debounced", c.Manager.Debounced(),
		"hotkey_restarts", c.Monitor.Restarts(),
		"colors_held", c.History.Len(),
	)
}
