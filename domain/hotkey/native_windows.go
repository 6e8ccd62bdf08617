//go:build windows

package hotkey

// Native capture registers the bindings through RegisterHotKey against
// a hidden message-only window and decodes WM_HOTKEY off a dedicated
// message pump. Registration, the pump and teardown all run on one
// locked OS thread because hotkeys bind to the registering thread's
// message queue. Stop posts WM_CLOSE as the quit sentinel; the pump
// unregisters, lets the window die and drains out through WM_QUIT.

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	wmDestroy = 0x0002
	wmClose   = 0x0010
	wmHotkey  = 0x0312

	hwndMessage = ^uintptr(2) // HWND_MESSAGE

	nativeStartTimeout = 2 * time.Second
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")
	procPostMessageW     = user32.NewProc("PostMessageW")
	procIsWindow         = user32.NewProc("IsWindow")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
)

type msg struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      [2]int32
}

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

const wndClassName = "ColorpickerHotkeyWnd"

var (
	wndClassOnce sync.Once
	wndClassErr  error
)

// ensureWindowClass registers the hidden window class once per process.
// Window classes cannot be registered twice under the same name.
func ensureWindowClass() error {
	wndClassOnce.Do(func() {
		cn, err := windows.UTF16PtrFromString(wndClassName)
		if err != nil {
			wndClassErr = err
			return
		}
		hInst, _, _ := procGetModuleHandleW.Call(0)
		wc := wndClassExW{
			WndProc:   windows.NewCallback(hiddenWndProc),
			Instance:  hInst,
			ClassName: cn,
		}
		wc.Size = uint32(unsafe.Sizeof(wc))
		if atom, _, cerr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
			wndClassErr = fmt.Errorf("hotkey: RegisterClassExW: %v", cerr)
		}
	})
	return wndClassErr
}

func hiddenWndProc(hwnd, message, wparam, lparam uintptr) uintptr {
	if message == wmDestroy {
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, message, wparam, lparam)
	return ret
}

type nativeStrategy struct {
	bindings []Binding
	ids      []int32
	sink     Sink
	logger   *slog.Logger
	opts     Options

	started atomic.Bool
	running atomic.Bool
	hwnd    atomic.Uintptr
	done    chan struct{}
}

func newNativeStrategy(bindings []Binding, sink Sink, opts Options, logger *slog.Logger) Strategy {
	return &nativeStrategy{
		bindings: bindings,
		ids:      allocIDs(len(bindings)),
		sink:     sink,
		logger:   logger,
		opts:     opts,
	}
}

func (n *nativeStrategy) Name() string { return "native" }

// Start brings up the pump thread and waits for the registration
// outcome. A false return means the window or a registration failed
// and the pump has already torn itself down.
func (n *nativeStrategy) Start() bool {
	if !n.started.CompareAndSwap(false, true) {
		return n.running.Load()
	}
	n.done = make(chan struct{})
	result := make(chan error, 1)
	go n.pump(result)

	select {
	case err := <-result:
		if err != nil {
			if n.logger != nil {
				n.logger.Warn("native hotkeys unavailable", "error", err)
			}
			return false
		}
		n.running.Store(true)
		return true
	case <-time.After(nativeStartTimeout):
		if n.logger != nil {
			n.logger.Error("native hotkey pump stalled during start")
		}
		n.Stop()
		return false
	}
}

// Stop posts the close sentinel and waits, bounded, for the pump to
// drain. The OS thread is abandoned if it does not exit in time.
func (n *nativeStrategy) Stop() {
	n.running.Store(false)
	if hwnd := n.hwnd.Load(); hwnd != 0 {
		procPostMessageW.Call(hwnd, wmClose, 0, 0)
	}
	if n.done == nil {
		return
	}
	select {
	case <-n.done:
	case <-time.After(n.opts.StopTimeout):
		if n.logger != nil {
			n.logger.Warn("hotkey pump did not exit in time; abandoning thread")
		}
	}
}

func (n *nativeStrategy) Alive() bool {
	hwnd := n.hwnd.Load()
	if !n.running.Load() || hwnd == 0 {
		return false
	}
	ok, _, _ := procIsWindow.Call(hwnd)
	return ok != 0
}

func (n *nativeStrategy) pump(result chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(n.done)
	defer recoverLog(n.logger, "hotkey pump panic")

	if err := ensureWindowClass(); err != nil {
		result <- fmt.Errorf("%w: %v", ErrStrategyUnavailable, err)
		return
	}
	cn, err := windows.UTF16PtrFromString(wndClassName)
	if err != nil {
		result <- err
		return
	}
	hwnd, _, cerr := procCreateWindowExW.Call(
		0, uintptr(unsafe.Pointer(cn)), 0, 0,
		0, 0, 0, 0,
		hwndMessage, 0, 0, 0)
	if hwnd == 0 {
		result <- fmt.Errorf("%w: CreateWindowExW: %v", ErrStrategyUnavailable, cerr)
		return
	}
	n.hwnd.Store(hwnd)
	defer n.hwnd.Store(0)

	if err := n.register(hwnd); err != nil {
		procPostMessageW.Call(hwnd, wmClose, 0, 0)
		n.drain(hwnd)
		result <- err
		return
	}
	result <- nil
	n.drain(hwnd)
}

// register claims every binding or unwinds the ones it got.
func (n *nativeStrategy) register(hwnd uintptr) error {
	for i, b := range n.bindings {
		ret, _, rerr := procRegisterHotKey.Call(hwnd, uintptr(n.ids[i]), uintptr(b.Modifiers), uintptr(b.VK))
		if ret != 0 {
			continue
		}
		for j := 0; j < i; j++ {
			procUnregisterHotKey.Call(hwnd, uintptr(n.ids[j]))
		}
		if errors.Is(rerr, windows.ERROR_HOTKEY_ALREADY_REGISTERED) {
			return fmt.Errorf("%w: action=%s vk=0x%X", ErrRegistrationConflict, b.Action, b.VK)
		}
		return fmt.Errorf("%w: RegisterHotKey action=%s vk=0x%X: %v", ErrStrategyUnavailable, b.Action, b.VK, rerr)
	}
	return nil
}

// drain runs the message loop until WM_QUIT. WM_HOTKEY is decoded
// here; the close sentinel unregisters on this thread, then the
// default close handling destroys the window and posts the quit.
func (n *nativeStrategy) drain(hwnd uintptr) {
	var m msg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(ret) <= 0 {
			break
		}
		switch m.Message {
		case wmHotkey:
			n.dispatch(int32(m.WParam))
		case wmClose:
			for i := range n.bindings {
				procUnregisterHotKey.Call(hwnd, uintptr(n.ids[i]))
			}
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		default:
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		}
	}
}

func (n *nativeStrategy) dispatch(id int32) {
	if !n.running.Load() {
		return
	}
	for i, bid := range n.ids {
		if bid == id {
			n.sink(n.bindings[i].Action)
			return
		}
	}
}

// asyncKeyState backs the polling strategy. High bit set means the key
// is currently down.
func asyncKeyState(vk uint32) (bool, error) {
	if err := procGetAsyncKeyState.Find(); err != nil {
		return false, err
	}
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return ret&0x8000 != 0, nil
}
