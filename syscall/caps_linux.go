//go:build linux

package syscall

import (
	"unsafe"

	"golang.org/x/sys/unix"
	"kernel.org/pub/linux/libs/security/libcap/psx"
)

// Capget retrieves the capability sets of the process identified by
// hdr.Pid into data. hdr.Version must be LinuxCapabilityVersion3, for
// which the kernel fills both CapUserData blocks.
func Capget(hdr *CapUserHeader, data *[2]CapUserData) error {
	_, _, e := unix.Syscall(unix.SYS_CAPGET, uintptr(unsafe.Pointer(hdr)), uintptr(unsafe.Pointer(&data[0])), 0)
	if e != 0 {
		return e
	}
	return nil
}

// Capset sets the capability sets of the calling thread from data.
// Most callers want AllThreadsCapset instead: the Go runtime multiplexes
// goroutines over many OS threads, and the kernel applies capset to a
// single thread only.
func Capset(hdr *CapUserHeader, data *[2]CapUserData) error {
	_, _, e := unix.Syscall(unix.SYS_CAPSET, uintptr(unsafe.Pointer(hdr)), uintptr(unsafe.Pointer(&data[0])), 0)
	if e != 0 {
		return e
	}
	return nil
}

// AllThreadsCapset is like Capset, but applies the new capability sets
// to all OS threads of the current process at the same time.
func AllThreadsCapset(hdr *CapUserHeader, data *[2]CapUserData) error {
	_, _, e := psx.Syscall3(unix.SYS_CAPSET, uintptr(unsafe.Pointer(hdr)), uintptr(unsafe.Pointer(&data[0])), 0)
	if e != 0 {
		return e
	}
	return nil
}

// Prctl is the prctl syscall on the calling thread.
func Prctl(option int, arg2, arg3, arg4, arg5 uintptr) error {
	return unix.Prctl(option, arg2, arg3, arg4, arg5)
}

// PrctlRetInt is like Prctl for options whose result is the
// non-negative return value of the syscall rather than an out
// parameter, e.g. PR_CAPBSET_READ.
func PrctlRetInt(option int, arg2, arg3, arg4, arg5 uintptr) (int, error) {
	return unix.PrctlRetInt(option, arg2, arg3, arg4, arg5)
}

// AllThreadsPrctl is like Prctl, but gets applied on all OS threads at
// the same time.
func AllThreadsPrctl(option int, arg2, arg3, arg4, arg5 uintptr) error {
	_, _, e := psx.Syscall6(unix.SYS_PRCTL, uintptr(option), arg2, arg3, arg4, arg5, 0)
	if e != 0 {
		return e
	}
	return nil
}
