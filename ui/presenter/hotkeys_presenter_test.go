package presenter

import "testing"

type mockHotkeysModel struct{ enabled bool }

func (m *mockHotkeysModel) Enabled() bool     { return m.enabled }
func (m *mockHotkeysModel) SetEnabled(b bool) { m.enabled = b }

type mockManager struct{ started, stopped, restarted int }

func (s *mockManager) Start() bool   { s.started++; return true }
func (s *mockManager) Stop()         { s.stopped++ }
func (s *mockManager) Restart() bool { s.restarted++; return true }

type mockMonitor struct{ started, stopped int }

func (w *mockMonitor) Start() { w.started++ }
func (w *mockMonitor) Stop()  { w.stopped++ }

func TestHotkeysPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &mockHotkeysModel{}
	mgr := &mockManager{}
	mon := &mockMonitor{}
	p := NewHotkeysPresenter(m, mgr, mon)

	p.Enable()
	if !m.Enabled() || mgr.started != 1 || mon.started != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d monitor=%d", m.Enabled(), mgr.started, mon.started)
	}
	p.Enable()
	if mgr.started != 1 || mon.started != 1 {
		t.Fatalf("enable not idempotent: started=%d monitor=%d", mgr.started, mon.started)
	}

	p.Disable()
	if m.Enabled() || mgr.stopped != 1 || mon.stopped != 1 {
		t.Fatalf("disable failed: enabled=%v stopped=%d monitor=%d", m.Enabled(), mgr.stopped, mon.stopped)
	}
	p.Disable()
	if mgr.stopped != 1 || mon.stopped != 1 {
		t.Fatalf("disable not idempotent: stopped=%d monitor=%d", mgr.stopped, mon.stopped)
	}
}

func TestHotkeysPresenter_Toggle(t *testing.T) {
	m := &mockHotkeysModel{}
	mgr := &mockManager{}
	mon := &mockMonitor{}
	p := NewHotkeysPresenter(m, mgr, mon)
	p.Toggle() // enable path
	if !m.Enabled() || mgr.started != 1 {
		t.Fatal("toggle enable failed")
	}
	p.Toggle() // disable path
	if m.Enabled() || mgr.stopped != 1 || mon.stopped != 1 {
		t.Fatal("toggle disable failed")
	}
}

func TestHotkeysPresenter_Restart(t *testing.T) {
	m := &mockHotkeysModel{}
	mgr := &mockManager{}
	p := NewHotkeysPresenter(m, mgr, nil)

	// Disabled: restart is an enable.
	p.Restart()
	if mgr.started != 1 || mgr.restarted != 0 || !m.Enabled() {
		t.Fatalf("restart while disabled: started=%d restarted=%d", mgr.started, mgr.restarted)
	}
	// Enabled: restart delegates to the manager.
	p.Restart()
	if mgr.restarted != 1 || mgr.started != 1 {
		t.Fatalf("restart while enabled: started=%d restarted=%d", mgr.started, mgr.restarted)
	}
}
