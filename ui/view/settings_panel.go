package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the configuration form widgets and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type SettingsPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type settingsPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func() // invoked after a successful save
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg. onApply may be nil.
func NewSettingsPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func()) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("debounceMs", "Debounce Ms", fmt.Sprintf("%d", c.DebounceMs))
	makeRow("pollIntervalMs", "Poll Interval Ms", fmt.Sprintf("%d", c.PollIntervalMs))
	makeRow("monitorIntervalMs", "Monitor Interval Ms", fmt.Sprintf("%d", c.MonitorIntervalMs))
	makeRow("restartCooldownMs", "Restart Cooldown Ms", fmt.Sprintf("%d", c.RestartCooldownMs))
	makeRow("historySize", "History Size", fmt.Sprintf("%d", c.HistorySize))
	makeRow("magnifierRadius", "Magnifier Radius", fmt.Sprintf("%d", c.MagnifierRadius))
	makeRow("magnifierZoom", "Magnifier Zoom", fmt.Sprintf("%d", c.MagnifierZoom))
	makeRow("hotkeysEnabled", "Hotkeys (true/false)", fmt.Sprintf("%t", c.HotkeysEnabled))
	makeRow("notifications", "Notifications (true/false)", fmt.Sprintf("%t", c.Notifications))
	makeRow("lightTheme", "Light Theme (true/false)", fmt.Sprintf("%t", c.LightTheme))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(strings.TrimSpace(v.text(w))); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if b, ok := parseBoolLoose(strings.TrimSpace(v.text(w))); ok {
			*dst = b
		}
	}
	assignInt("debounceMs", &cfg.DebounceMs)
	assignInt("pollIntervalMs", &cfg.PollIntervalMs)
	assignInt("monitorIntervalMs", &cfg.MonitorIntervalMs)
	assignInt("restartCooldownMs", &cfg.RestartCooldownMs)
	assignInt("historySize", &cfg.HistorySize)
	assignInt("magnifierRadius", &cfg.MagnifierRadius)
	assignInt("magnifierZoom", &cfg.MagnifierZoom)
	assignBool("hotkeysEnabled", &cfg.HotkeysEnabled)
	assignBool("notifications", &cfg.Notifications)
	assignBool("lightTheme", &cfg.LightTheme)
	_ = cfg.Validate() // clamps in place, never fails
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply()
	}
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
