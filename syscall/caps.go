// Package syscall provides a low-level interface to the Linux
// capability syscalls and to the security.capability extended
// attribute that stores file capabilities.
package syscall

// Magic word sub-fields of the security.capability extended attribute,
// from <linux/capability.h>. The revision lives in the top byte of the
// little-endian magic word, the flags in the remaining bits.
const (
	VFSCapRevision1    uint32 = 0x01000000
	VFSCapRevision2    uint32 = 0x02000000
	VFSCapRevision3    uint32 = 0x03000000
	VFSCapRevisionMask uint32 = 0xff000000

	VFSCapFlagsMask      uint32 = 0x00ffffff
	VFSCapFlagsEffective uint32 = 0x000001
)

// Sizes in bytes of the three attribute layouts.
const (
	XattrCapsSize1 = 12
	XattrCapsSize2 = 20
	XattrCapsSize3 = 24

	XattrCapsMaxSize = XattrCapsSize3
)

// XattrNameCaps is the name of the extended attribute holding file
// capabilities.
const XattrNameCaps = "security.capability"

// LinuxCapabilityVersion3 is the _LINUX_CAPABILITY_VERSION_3 ABI
// version for the capget and capset syscalls. Version 3 uses two
// CapUserData blocks per call, covering 64 capability bits.
const LinuxCapabilityVersion3 = 0x20080522

// CapUserHeader is the header argument of the capget and capset
// syscalls.
type CapUserHeader struct {
	Version uint32
	Pid     int32
}

// CapUserData is one 32-bit block of per-process capability bits.
// The version 3 ABI passes an array of two: index 0 holds capability
// bits 0..31, index 1 holds bits 32..63.
type CapUserData struct {
	Effective   uint32
	Permitted   uint32
	Inheritable uint32
}

// prctl option values used by this package, from <linux/prctl.h> and
// <linux/securebits.h>.
const (
	PR_GET_KEEPCAPS     = 7
	PR_SET_KEEPCAPS     = 8
	PR_CAPBSET_READ     = 23
	PR_CAPBSET_DROP     = 24
	PR_GET_SECUREBITS   = 27
	PR_SET_SECUREBITS   = 28
	PR_SET_NO_NEW_PRIVS = 38
	PR_GET_NO_NEW_PRIVS = 39

	PR_CAP_AMBIENT           = 47
	PR_CAP_AMBIENT_IS_SET    = 1
	PR_CAP_AMBIENT_RAISE     = 2
	PR_CAP_AMBIENT_LOWER     = 3
	PR_CAP_AMBIENT_CLEAR_ALL = 4
)
