//go:build windows

package sampler

// Direct pixel reads against the screen DC. GetPixel is slow per call
// but the picker samples one pixel per UI tick, so per-call GDI
// acquisition keeps no persistent handles.

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/AlgorithmAlchemy/Colorpicker-free-sub000/colorconv"
)

const clrInvalid = 0xFFFFFFFF

// Win32 DLL procs (lazy loaded)
var (
	user32           = syscall.NewLazyDLL("user32.dll")
	gdi32            = syscall.NewLazyDLL("gdi32.dll")
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	procGetDC        = user32.NewProc("GetDC")
	procReleaseDC    = user32.NewProc("ReleaseDC")
	procGetCursorPos = user32.NewProc("GetCursorPos")
	procGetPixel     = gdi32.NewProc("GetPixel")
	procGetLastError = kernel32.NewProc("GetLastError")
)

type point struct {
	X, Y int32
}

// readPixel reads one pixel from the screen DC. COLORREF layout is
// 0x00BBGGRR.
func readPixel(x, y int) (colorconv.RGB, error) {
	dc, _, _ := procGetDC.Call(0)
	if dc == 0 {
		return colorconv.RGB{}, fmt.Errorf("sampler: GetDC failed winerr=%d", getLastError())
	}
	defer procReleaseDC.Call(0, dc)

	v, _, _ := procGetPixel.Call(dc, uintptr(x), uintptr(y))
	if uint32(v) == clrInvalid {
		return colorconv.RGB{}, fmt.Errorf("sampler: GetPixel failed x=%d y=%d winerr=%d", x, y, getLastError())
	}
	return colorconv.RGB{
		R: uint8(v & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8((v >> 16) & 0xFF),
	}, nil
}

func cursorPos() (int, int, error) {
	var pt point
	ok, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return 0, 0, fmt.Errorf("sampler: GetCursorPos failed winerr=%d", getLastError())
	}
	return int(pt.X), int(pt.Y), nil
}

func getLastError() uint32 {
	v, _, _ := procGetLastError.Call()
	return uint32(v)
}
