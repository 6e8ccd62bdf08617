//go:build windows

package debug

import (
	"log/slog"
	"unsafe"

	"golang.org/x/sys/windows"
)

// processMemoryCounters matches PROCESS_MEMORY_COUNTERS from psapi.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modPsapi                 = windows.NewLazySystemDLL("psapi.dll")
	procGetProcessMemoryInfo = modPsapi.NewProc("GetProcessMemoryInfo")

	rssErrLogged bool
)

// readRSS reports the process working set. A leaked device context in
// the sampling path grows here while the Go heap stays flat. Failures
// are logged once and then suppressed; readRSS runs on the single
// runtime-logger goroutine.
func readRSS(logger *slog.Logger) (uint64, bool) {
	pmc := processMemoryCounters{cb: uint32(unsafe.Sizeof(processMemoryCounters{}))}
	r1, _, err := procGetProcessMemoryInfo.Call(
		uintptr(windows.CurrentProcess()),
		uintptr(unsafe.Pointer(&pmc)),
		uintptr(pmc.cb),
	)
	if r1 == 0 {
		if !rssErrLogged && logger != nil {
			logger.Warn("GetProcessMemoryInfo call failed", slog.String("err", err.Error()))
			rssErrLogged = true
		}
		return 0, false
	}
	return uint64(pmc.WorkingSetSize), true
}
