//go:build linux

package syscall

import "golang.org/x/sys/unix"

// GetCapsXattr reads the raw security.capability attribute of the file
// at path into buf and returns the attribute length. The error is
// unix.ENODATA when the file has no file capabilities.
func GetCapsXattr(path string, buf []byte) (int, error) {
	return unix.Getxattr(path, XattrNameCaps, buf)
}

// FGetCapsXattr is like GetCapsXattr for an open file descriptor.
func FGetCapsXattr(fd int, buf []byte) (int, error) {
	return unix.Fgetxattr(fd, XattrNameCaps, buf)
}

// SetCapsXattr writes data as the raw security.capability attribute of
// the file at path.
func SetCapsXattr(path string, data []byte) error {
	return unix.Setxattr(path, XattrNameCaps, data, 0)
}

// FSetCapsXattr is like SetCapsXattr for an open file descriptor.
func FSetCapsXattr(fd int, data []byte) error {
	return unix.Fsetxattr(fd, XattrNameCaps, data, 0)
}

// RemoveCapsXattr removes the security.capability attribute of the
// file at path.
func RemoveCapsXattr(path string) error {
	return unix.Removexattr(path, XattrNameCaps)
}

// FRemoveCapsXattr is like RemoveCapsXattr for an open file
// descriptor.
func FRemoveCapsXattr(fd int) error {
	return unix.Fremovexattr(fd, XattrNameCaps)
}
