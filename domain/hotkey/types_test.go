package hotkey

import "testing"

func TestDefaultBindingsAreFixed(t *testing.T) {
	b := DefaultBindings()
	if len(b) != 2 {
		t.Fatalf("bindings = %d, want 2", len(b))
	}
	if b[0].Action != ActionCapture || b[0].VK != vkControl || b[0].Modifiers != 0 {
		t.Fatalf("primary binding = %+v, want bare Ctrl capture", b[0])
	}
	if b[1].Action != ActionCancel || b[1].VK != vkEscape || b[1].Modifiers != 0 {
		t.Fatalf("secondary binding = %+v, want Escape cancel", b[1])
	}
}

func TestAllocIDsUniqueAcrossInstances(t *testing.T) {
	seen := make(map[int32]bool)
	for i := 0; i < 4; i++ {
		for _, id := range allocIDs(2) {
			if id < 1 || id > 0xBFFE {
				t.Fatalf("id %d outside the application hotkey range", id)
			}
			if seen[id] {
				t.Fatalf("id %d handed out twice", id)
			}
			seen[id] = true
		}
	}
}

func TestOptionDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Debounce != DefaultDebounce || o.PollInterval != DefaultPollInterval || o.StopTimeout != DefaultStopTimeout {
		t.Fatalf("defaults not applied: %+v", o)
	}
	custom := Options{Debounce: DefaultDebounce * 2}.withDefaults()
	if custom.Debounce != DefaultDebounce*2 {
		t.Fatalf("explicit debounce overridden: %+v", custom)
	}
}

func TestEnumStrings(t *testing.T) {
	if ActionCapture.String() != "capture" || ActionCancel.String() != "cancel" {
		t.Fatal("action strings drifted")
	}
	states := map[ManagerState]string{
		StateStopped:     "stopped",
		StateStarting:    "starting",
		StateRunning:     "running",
		StateUnavailable: "unavailable",
	}
	for s, want := range states {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
