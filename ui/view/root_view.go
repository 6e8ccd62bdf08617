package view

import (
	"image"
	"log/slog"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/config"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/domain/picker"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/images"
	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const swatchPx = 64

// StatusLevel selects the pill style used for the hotkey status label.
type StatusLevel int

const (
	LevelOK StatusLevel = iota
	LevelWarn
	LevelErr
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Readout   Readout
	Magnifier Magnifier
	History   HistoryRow
	Settings  SettingsPanel

	// Widgets
	StatusLabel   *LabelWidget
	freezeBtn     *ButtonWidget
	swatchLbl     *LabelWidget
	prevSwatch    *Img
	lastSwatchHex string
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetReadout(mode picker.Mode, snap picker.Snapshot)
	SetMagnifier(region image.Image)
	SetHistory(items []picker.Snapshot)
	SetHotkeyStatus(text string, level StatusLevel)
	SettingsEditable(enabled bool)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(onToggleFreeze, onRestartHotkeys, onToggleTheme, onExit, onSettingsApplied func()) {
	if rv == nil {
		return
	}
	cfg := rv.cfg
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	// Row 0: swatch, magnifier, buttons frame
	black := images.Swatch(picker.Snapshot{}.Color.NRGBA(), swatchPx, swatchPx)
	rv.prevSwatch = NewPhoto(Data(images.EncodePNG(black)))
	rv.swatchLbl = Label(Image(rv.prevSwatch), Borderwidth(1), Relief("sunken"))
	Grid(rv.swatchLbl, Row(0), Column(0), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))

	rv.Magnifier = NewMagnifier(0, 1, cfg.MagnifierZoom)

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.freezeBtn = Button(Txt("Freeze [Ctrl]"), Style(theme.StylePrimaryButton), Command(onToggleFreeze))
	Grid(rv.freezeBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	restartBtn := Button(Txt("Restart Hotkeys"), Style(theme.StyleDangerButton), Command(onRestartHotkeys))
	Grid(restartBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	themeBtn := Button(Txt("Toggle Theme"), Command(onToggleTheme))
	Grid(themeBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: hotkey status pill
	rv.StatusLabel = Label(Txt("Hotkeys: starting"), Style(theme.StyleStateWarn))
	Grid(rv.StatusLabel, Row(1), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Readout rows, history strip, settings form
	var next int
	rv.Readout, next = NewReadout(2)
	rv.History = NewHistoryRow(next, cfg.HistorySize)
	next++
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, rv.logger, onSettingsApplied)
	rv.Settings.Build(next)
}

// SetReadout refreshes the swatch, value labels and freeze button for the
// given snapshot.
func (rv *RootView) SetReadout(mode picker.Mode, snap picker.Snapshot) {
	if rv == nil {
		return
	}
	rv.setSwatch(snap)
	if rv.Readout != nil {
		rv.Readout.SetColor(snap.Color)
		rv.Readout.SetPosition(snap.Pos)
	}
	if rv.freezeBtn != nil {
		if mode == picker.ModeFrozen {
			rv.freezeBtn.Configure(Txt("Resume [Ctrl]"))
		} else {
			rv.freezeBtn.Configure(Txt("Freeze [Ctrl]"))
		}
	}
}

func (rv *RootView) setSwatch(snap picker.Snapshot) {
	if rv.swatchLbl == nil {
		return
	}
	hex := snap.Color.Hex()
	if hex == rv.lastSwatchHex {
		return
	}
	tile := images.Swatch(snap.Color.NRGBA(), swatchPx, swatchPx)
	if rv.prevSwatch != nil {
		rv.prevSwatch.Delete()
	}
	rv.prevSwatch = NewPhoto(Data(images.EncodePNG(tile)))
	rv.swatchLbl.Configure(Image(rv.prevSwatch))
	rv.lastSwatchHex = hex
}

// SetMagnifier proxies to the magnifier subview.
func (rv *RootView) SetMagnifier(region image.Image) {
	if rv != nil && rv.Magnifier != nil {
		rv.Magnifier.Update(region)
	}
}

// SetHistory proxies to the history strip.
func (rv *RootView) SetHistory(items []picker.Snapshot) {
	if rv != nil && rv.History != nil {
		rv.History.SetItems(items)
	}
}

// SetHotkeyStatus updates the status pill text and severity style.
func (rv *RootView) SetHotkeyStatus(text string, level StatusLevel) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	style := theme.StyleStateOK
	switch level {
	case LevelWarn:
		style = theme.StyleStateWarn
	case LevelErr:
		style = theme.StyleStateErr
	}
	rv.StatusLabel.Configure(Txt(text), Style(style))
}

// SettingsEditable toggles settings form editability.
func (rv *RootView) SettingsEditable(enabled bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(enabled)
	}
}
