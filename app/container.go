package app

import (
	"log/slog"
	"time"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/config"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/hotkey"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/sampler"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/bridge"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/model"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/presenter"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/view"
)

// AppContainer assembles domain services, models, presenters and the
// root view.
type AppContainer struct {
	Config  *config.Config
	Logger  *slog.Logger
	Sampler *sampler.ScreenSampler
	State   *picker.State
	Bridge  *bridge.Bridge
	Manager *hotkey.Manager
	Monitor *hotkey.Monitor

	Hotkeys *model.HotkeysModel
	History *model.HistoryModel
	Status  *model.StatusModel

	RootView *view.RootView
	UI       view.UI

	// Presenters
	PickerPresenter  *presenter.PickerPresenter
	StatusPresenter  *presenter.StatusPresenter
	HotkeysPresenter *presenter.HotkeysPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. Hotkey presses and manager
// state changes publish to the bridge from their own goroutines;
// nothing here touches Tk until the view is built.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string, notify presenter.Notifier) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Sampler = sampler.New(logger)
	c.State = picker.NewState(c.Sampler, c.Sampler, logger)
	c.Bridge = bridge.New(bridge.DefaultCapacity, logger)

	c.Manager = hotkey.NewManager(hotkeyOptions(cfg),
		func() { c.Bridge.Publish(bridge.PressEvent{Action: hotkey.ActionCapture, At: time.Now()}) },
		func() { c.Bridge.Publish(bridge.PressEvent{Action: hotkey.ActionCancel, At: time.Now()}) },
		nil, logger)
	c.Manager.AddStateListener(func(state hotkey.ManagerState, strategy string) {
		c.Bridge.Publish(bridge.StatusEvent{State: state, Strategy: strategy, At: time.Now()})
	})
	c.Monitor = hotkey.NewMonitor(c.Manager, cfg.MonitorInterval(), cfg.RestartCooldown(), logger)

	c.Hotkeys = &model.HotkeysModel{}
	c.History = model.NewHistoryModel(cfg.HistorySize)
	c.Status = model.NewStatusModel()

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView

	c.PickerPresenter = presenter.NewPickerPresenter(c.State, c.Sampler, c.History, c.UI, cfg.MagnifierRadius)
	c.StatusPresenter = presenter.NewStatusPresenter(c.Status, c.UI, notify)
	c.HotkeysPresenter = presenter.NewHotkeysPresenter(c.Hotkeys, c.Manager, c.Monitor)
	// Loop.Schedule is wired by the app once the Tk after-queue exists.
	c.Loop = presenter.NewLoop(c.Bridge, c.PickerPresenter, c.StatusPresenter, nil)
	return c
}

func hotkeyOptions(cfg *config.Config) hotkey.Options {
	return hotkey.Options{
		Debounce:     cfg.Debounce(),
		PollInterval: cfg.PollInterval(),
		StopTimeout:  cfg.StopTimeout(),
	}
}
