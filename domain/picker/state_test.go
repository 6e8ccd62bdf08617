package picker

import (
	"errors"
	"image"
	"log/slog"
	"testing"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

type fakeSampler struct {
	color colorconv.RGB
	err   error
	calls int
}

func (f *fakeSampler) Sample(x, y int) (colorconv.RGB, error) {
	f.calls++
	if f.err != nil {
		return colorconv.Black, f.err
	}
	return f.color, nil
}

type fakeCursor struct {
	x, y int
	err  error
}

func (f *fakeCursor) CursorPos() (int, int, error) { return f.x, f.y, f.err }

type notifyRecorder struct {
	modes []Mode
	snaps []Snapshot
}

func (r *notifyRecorder) listener(m Mode, s Snapshot) {
	r.modes = append(r.modes, m)
	r.snaps = append(r.snaps, s)
}

func newTestState() (*State, *fakeSampler, *fakeCursor) {
	smp := &fakeSampler{color: colorconv.RGB{R: 1, G: 2, B: 3}}
	cur := &fakeCursor{x: 10, y: 20}
	return NewState(smp, cur, discardLogger), smp, cur
}

func TestToggleFreezeCapturesFreshSnapshot(t *testing.T) {
	st, smp, cur := newTestState()
	r := &notifyRecorder{}
	st.AddListener(r.listener)

	cur.x, cur.y = 33, 44
	smp.color = colorconv.RGB{R: 250, G: 0, B: 0}
	st.ToggleFreeze()

	if st.Mode() != ModeFrozen {
		t.Fatalf("mode = %v, want frozen", st.Mode())
	}
	got := st.Current()
	if got.Pos != image.Pt(33, 44) || got.Color != smp.color {
		t.Fatalf("frozen snapshot = %+v, want pos (33,44) color %v", got, smp.color)
	}
	if got.At.IsZero() {
		t.Fatal("frozen snapshot missing timestamp")
	}
	if len(r.modes) != 1 || r.modes[0] != ModeFrozen {
		t.Fatalf("notifications = %v, want single frozen", r.modes)
	}
}

func TestUpdateLiveIsNoOpWhileFrozen(t *testing.T) {
	st, smp, cur := newTestState()
	st.ToggleFreeze()
	held := st.Current()
	calls := smp.calls

	cur.x, cur.y = 99, 99
	smp.color = colorconv.RGB{R: 9, G: 9, B: 9}
	if st.UpdateLive() {
		t.Fatal("UpdateLive reported change while frozen")
	}
	if smp.calls != calls {
		t.Fatalf("sampler touched while frozen: %d calls, want %d", smp.calls, calls)
	}
	if st.Current() != held {
		t.Fatalf("frozen snapshot drifted: %+v -> %+v", held, st.Current())
	}
}

func TestUpdateLiveSignalsOnlyOnChange(t *testing.T) {
	st, smp, cur := newTestState()
	r := &notifyRecorder{}
	st.AddListener(r.listener)

	if !st.UpdateLive() {
		t.Fatal("first update from zero snapshot should signal")
	}
	if st.UpdateLive() {
		t.Fatal("unchanged sample should not signal")
	}
	cur.x = 11
	if !st.UpdateLive() {
		t.Fatal("cursor move should signal")
	}
	smp.color = colorconv.RGB{R: 7, G: 7, B: 7}
	if !st.UpdateLive() {
		t.Fatal("color change should signal")
	}
	if len(r.modes) != 3 {
		t.Fatalf("notifications = %d, want 3", len(r.modes))
	}
}

func TestUnfreezeResumesLiveTracking(t *testing.T) {
	st, smp, cur := newTestState()
	st.ToggleFreeze()
	st.ToggleFreeze()
	if st.Mode() != ModeLive {
		t.Fatalf("mode = %v, want live after second toggle", st.Mode())
	}
	cur.x, cur.y = 70, 71
	smp.color = colorconv.RGB{R: 42, G: 42, B: 42}
	if !st.UpdateLive() {
		t.Fatal("live update after unfreeze should signal")
	}
	if got := st.Current(); got.Pos != image.Pt(70, 71) {
		t.Fatalf("pos = %v, want (70,71)", got.Pos)
	}
}

func TestUpdateLiveFailureShowsBlackAndSignals(t *testing.T) {
	st, smp, cur := newTestState()
	cur.x, cur.y = 5, 6
	if !st.UpdateLive() {
		t.Fatal("setup update should signal")
	}

	r := &notifyRecorder{}
	st.AddListener(r.listener)
	smp.err = errors.New("display gone")
	if !st.UpdateLive() {
		t.Fatal("failed update should still signal")
	}
	got := st.Current()
	if got.Color != colorconv.Black {
		t.Fatalf("color = %v, want black on failure", got.Color)
	}
	if got.Pos != image.Pt(5, 6) {
		t.Fatalf("pos = %v, want last known (5,6)", got.Pos)
	}
	// Errors keep signaling even without change, so a dead display is
	// visible rather than a frozen-looking UI.
	if !st.UpdateLive() {
		t.Fatal("repeated failure should keep signaling")
	}
	if len(r.snaps) != 2 {
		t.Fatalf("notifications = %d, want 2", len(r.snaps))
	}
}

func TestCursorFailureDegradesLikeSampleFailure(t *testing.T) {
	st, _, cur := newTestState()
	cur.err = errors.New("no pointer")
	if !st.UpdateLive() {
		t.Fatal("cursor failure should signal")
	}
	if st.Current().Color != colorconv.Black {
		t.Fatalf("color = %v, want black", st.Current().Color)
	}
}

func TestFreezeCaptureFailureHoldsBlack(t *testing.T) {
	st, smp, cur := newTestState()
	cur.x, cur.y = 8, 9
	st.UpdateLive()

	smp.err = errors.New("display gone")
	st.ToggleFreeze()
	if st.Mode() != ModeFrozen {
		t.Fatalf("mode = %v, want frozen despite capture failure", st.Mode())
	}
	got := st.Current()
	if got.Color != colorconv.Black || got.Pos != image.Pt(8, 9) {
		t.Fatalf("snapshot = %+v, want black at last known position", got)
	}
}
