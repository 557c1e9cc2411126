package capctl

import (
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	raw "github.com/dralley/capctl/syscall"
)

// errInvalidFileCaps is returned for any malformed security.capability
// attribute data. It wraps unix.EINVAL so callers can match the errno
// with errors.Is.
var errInvalidFileCaps = fmt.Errorf("invalid file capabilities data: %w", unix.EINVAL)

// FileCaps represents the capabilities attached to a file via its
// security.capability extended attribute.
type FileCaps struct {
	// Effective is the file "effective" bit. If set, an execve() of the
	// file raises all capabilities from Permitted into the new
	// process's effective set immediately, instead of requiring the
	// process to raise them itself.
	Effective bool

	// Permitted is added to the new process's permitted set.
	Permitted CapSet

	// Inheritable is added to the new process's inheritable set.
	Inheritable CapSet

	// RootID is the root user ID of the user namespace in which the
	// file capabilities were set; see capabilities(7). It is nil except
	// for version 3 attributes, and a non-nil RootID selects the
	// version 3 layout when encoding.
	RootID *uint32
}

// UnmarshalBinary decodes the raw security.capability attribute data
// into fc.
//
// The layout is selected by the revision in the attribute's magic word
// together with the exact data length: revision 1 is 12 bytes,
// revision 2 is 20 bytes, revision 3 is 24 bytes. Any other
// combination, including a recognized revision with the wrong length,
// fails with an error wrapping unix.EINVAL, and fc is left unmodified.
func (fc *FileCaps) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errInvalidFileCaps
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	version := magic & raw.VFSCapRevisionMask
	effective := magic&raw.VFSCapFlagsEffective != 0

	// Revisions 2 and 3 interleave the per-set words: permitted-low,
	// inheritable-low, permitted-high, inheritable-high.
	switch {
	case version == raw.VFSCapRevision1 && len(data) == raw.XattrCapsSize1:
		*fc = FileCaps{
			Effective:   effective,
			Permitted:   CapSetFromBitmask(uint64(binary.LittleEndian.Uint32(data[4:8]))),
			Inheritable: CapSetFromBitmask(uint64(binary.LittleEndian.Uint32(data[8:12]))),
		}
	case version == raw.VFSCapRevision2 && len(data) == raw.XattrCapsSize2:
		*fc = FileCaps{
			Effective:   effective,
			Permitted:   capSetFromWords(binary.LittleEndian.Uint32(data[4:8]), binary.LittleEndian.Uint32(data[12:16])),
			Inheritable: capSetFromWords(binary.LittleEndian.Uint32(data[8:12]), binary.LittleEndian.Uint32(data[16:20])),
		}
	case version == raw.VFSCapRevision3 && len(data) == raw.XattrCapsSize3:
		rootID := binary.LittleEndian.Uint32(data[20:24])
		*fc = FileCaps{
			Effective:   effective,
			Permitted:   capSetFromWords(binary.LittleEndian.Uint32(data[4:8]), binary.LittleEndian.Uint32(data[12:16])),
			Inheritable: capSetFromWords(binary.LittleEndian.Uint32(data[8:12]), binary.LittleEndian.Uint32(data[16:20])),
			RootID:      &rootID,
		}
	default:
		return errInvalidFileCaps
	}
	return nil
}

// MarshalBinary encodes fc as raw security.capability attribute data.
//
// The revision 3 layout is emitted when RootID is non-nil, revision 2
// otherwise. Revision 1 is a decode-only legacy format and is never
// produced, so data decoded from a revision 1 attribute re-encodes as
// revision 2: the bytes differ but the capability membership is
// preserved. Revision 2 and 3 data round-trips byte-for-byte.
func (fc FileCaps) MarshalBinary() ([]byte, error) {
	magic := raw.VFSCapRevision2
	size := raw.XattrCapsSize2
	if fc.RootID != nil {
		magic = raw.VFSCapRevision3
		size = raw.XattrCapsSize3
	}
	if fc.Effective {
		magic |= raw.VFSCapFlagsEffective
	}

	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:4], magic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(fc.Permitted.bits))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(fc.Inheritable.bits))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(fc.Permitted.bits>>32))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(fc.Inheritable.bits>>32))
	if fc.RootID != nil {
		binary.LittleEndian.PutUint32(buf[20:24], *fc.RootID)
	}
	return buf, nil
}

// String renders the file capabilities in a single line, e.g.
// "permitted={NET_RAW} inheritable={} effective=true".
func (fc FileCaps) String() string {
	s := fmt.Sprintf("permitted=%v inheritable=%v effective=%v", fc.Permitted, fc.Inheritable, fc.Effective)
	if fc.RootID != nil {
		s += fmt.Sprintf(" rootid=%d", *fc.RootID)
	}
	return s
}

// GetFileCaps returns the capabilities attached to the file at path,
// or nil with a nil error when the file has none. Other failures are
// reported with their original errno.
func GetFileCaps(path string) (*FileCaps, error) {
	buf := make([]byte, raw.XattrCapsMaxSize)
	n, err := raw.GetCapsXattr(path, buf)
	return fileCapsFromXattr(buf, n, err)
}

// GetFileCapsFd is like GetFileCaps for an open file descriptor.
func GetFileCapsFd(fd int) (*FileCaps, error) {
	buf := make([]byte, raw.XattrCapsMaxSize)
	n, err := raw.FGetCapsXattr(fd, buf)
	return fileCapsFromXattr(buf, n, err)
}

func fileCapsFromXattr(buf []byte, n int, err error) (*FileCaps, error) {
	if err != nil {
		if errors.Is(err, unix.ENODATA) {
			return nil, nil
		}
		return nil, err
	}
	var fc FileCaps
	if err := fc.UnmarshalBinary(buf[:n]); err != nil {
		return nil, err
	}
	return &fc, nil
}

// SetFile attaches fc to the file at path.
func (fc FileCaps) SetFile(path string) error {
	data, err := fc.MarshalBinary()
	if err != nil {
		return err
	}
	return raw.SetCapsXattr(path, data)
}

// SetFd is like SetFile for an open file descriptor.
func (fc FileCaps) SetFd(fd int) error {
	data, err := fc.MarshalBinary()
	if err != nil {
		return err
	}
	return raw.FSetCapsXattr(fd, data)
}

// RemoveFileCaps removes the capabilities attached to the file at
// path.
func RemoveFileCaps(path string) error {
	return raw.RemoveCapsXattr(path)
}

// RemoveFileCapsFd is like RemoveFileCaps for an open file descriptor.
func RemoveFileCapsFd(fd int) error {
	return raw.FRemoveCapsXattr(fd)
}
