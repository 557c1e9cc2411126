//go:build !linux

package syscall

import "golang.org/x/sys/unix"

func Capget(hdr *CapUserHeader, data *[2]CapUserData) error {
	return unix.ENOSYS
}

func Capset(hdr *CapUserHeader, data *[2]CapUserData) error {
	return unix.ENOSYS
}

// AllThreadsCapset applies the given capability sets on all OS threads
// belonging to the current process.
func AllThreadsCapset(hdr *CapUserHeader, data *[2]CapUserData) error {
	return unix.ENOSYS
}

func Prctl(option int, arg2, arg3, arg4, arg5 uintptr) error {
	return unix.ENOSYS
}

func PrctlRetInt(option int, arg2, arg3, arg4, arg5 uintptr) (int, error) {
	return 0, unix.ENOSYS
}

// AllThreadsPrctl is like Prctl, but gets applied on all OS threads at
// the same time.
func AllThreadsPrctl(option int, arg2, arg3, arg4, arg5 uintptr) error {
	return unix.ENOSYS
}

func GetCapsXattr(path string, buf []byte) (int, error) {
	return 0, unix.ENOSYS
}

func FGetCapsXattr(fd int, buf []byte) (int, error) {
	return 0, unix.ENOSYS
}

func SetCapsXattr(path string, data []byte) error {
	return unix.ENOSYS
}

func FSetCapsXattr(fd int, data []byte) error {
	return unix.ENOSYS
}

func RemoveCapsXattr(path string) error {
	return unix.ENOSYS
}

func FRemoveCapsXattr(fd int) error {
	return unix.ENOSYS
}
