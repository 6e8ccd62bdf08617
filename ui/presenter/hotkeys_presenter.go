package presenter

// HotkeysModel provides enabled state access.
type HotkeysModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// ManagerContract narrows what the presenter needs from the hotkey layer.
type ManagerContract interface {
	Start() bool
	Stop()
	Restart() bool
}

// MonitorContract narrows the liveness monitor lifecycle.
type MonitorContract interface {
	Start()
	Stop()
}

// HotkeysPresenter owns presentation logic for toggling global hotkeys.
type HotkeysPresenter struct {
	model   HotkeysModel
	manager ManagerContract
	monitor MonitorContract
}

func NewHotkeysPresenter(model HotkeysModel, manager ManagerContract, monitor MonitorContract) *HotkeysPresenter {
	return &HotkeysPresenter{model: model, manager: manager, monitor: monitor}
}

// Enable starts the manager and its liveness monitor. Idempotent.
func (p *HotkeysPresenter) Enable() {
	if p == nil || p.model == nil || p.manager == nil {
		return
	}
	if p.model.Enabled() { // already enabled
		return
	}
	p.manager.Start()
	if p.monitor != nil {
		p.monitor.Start()
	}
	p.model.SetEnabled(true)
}

// Disable stops the monitor first so it cannot restart a manager that is
// shutting down. Idempotent.
func (p *HotkeysPresenter) Disable() {
	if p == nil || p.model == nil || p.manager == nil {
		return
	}
	if !p.model.Enabled() { // already disabled
		return
	}
	if p.monitor != nil {
		p.monitor.Stop()
	}
	p.manager.Stop()
	p.model.SetEnabled(false)
}

// Toggle flips enabled state delegating to Enable/Disable.
func (p *HotkeysPresenter) Toggle() {
	if p == nil || p.model == nil || p.manager == nil {
		return
	}
	if p.model.Enabled() {
		p.Disable()
		return
	}
	p.Enable()
}

// Restart rebuilds the active strategy chain; enabling first when hotkeys
// are currently off.
func (p *HotkeysPresenter) Restart() {
	if p == nil || p.model == nil || p.manager == nil {
		return
	}
	if !p.model.Enabled() {
		p.Enable()
		return
	}
	p.manager.Restart()
}
