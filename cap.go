// Package capctl provides a pure Go interface to Linux capabilities:
// the capability sets of processes (effective, permitted, inheritable,
// ambient and bounding), and the file capabilities stored in the
// security.capability extended attribute of executables.
//
// The package does not interpret what individual capabilities permit;
// it only queries and manipulates capability state.
package capctl

import (
	"fmt"
	"strings"
)

// Cap identifies a single Linux capability.
//
// The numeric values match the CAP_* constants from
// <linux/capability.h>. They are kernel ABI: new capabilities are only
// ever appended, existing ones are never renumbered.
type Cap uint8

const (
	CapChown Cap = iota
	CapDacOverride
	CapDacReadSearch
	CapFowner
	CapFsetid
	CapKill
	CapSetgid
	CapSetuid
	CapSetpcap
	CapLinuxImmutable
	CapNetBindService
	CapNetBroadcast
	CapNetAdmin
	CapNetRaw
	CapIpcLock
	CapIpcOwner
	CapSysModule
	CapSysRawio
	CapSysChroot
	CapSysPtrace
	CapSysPacct
	CapSysAdmin
	CapSysBoot
	CapSysNice
	CapSysResource
	CapSysTime
	CapSysTtyConfig
	CapMknod
	CapLease
	CapAuditWrite
	CapAuditControl
	CapSetfcap
	CapMacOverride
	CapMacAdmin
	CapSyslog
	CapWakeAlarm
	CapBlockSuspend
	CapAuditRead
	CapPerfmon
	CapBpf
	CapCheckpointRestore
)

// numCaps is the number of capabilities known to this build.
const numCaps = int(CapCheckpointRestore) + 1

// capBitmask has one bit set for every capability known to this build.
const capBitmask = uint64(1)<<numCaps - 1

// capNames holds the kernel names, without the CAP_ prefix, indexed by
// bit position. Keep in sync with the constants above.
var capNames = [numCaps]string{
	"CHOWN",
	"DAC_OVERRIDE",
	"DAC_READ_SEARCH",
	"FOWNER",
	"FSETID",
	"KILL",
	"SETGID",
	"SETUID",
	"SETPCAP",
	"LINUX_IMMUTABLE",
	"NET_BIND_SERVICE",
	"NET_BROADCAST",
	"NET_ADMIN",
	"NET_RAW",
	"IPC_LOCK",
	"IPC_OWNER",
	"SYS_MODULE",
	"SYS_RAWIO",
	"SYS_CHROOT",
	"SYS_PTRACE",
	"SYS_PACCT",
	"SYS_ADMIN",
	"SYS_BOOT",
	"SYS_NICE",
	"SYS_RESOURCE",
	"SYS_TIME",
	"SYS_TTY_CONFIG",
	"MKNOD",
	"LEASE",
	"AUDIT_WRITE",
	"AUDIT_CONTROL",
	"SETFCAP",
	"MAC_OVERRIDE",
	"MAC_ADMIN",
	"SYSLOG",
	"WAKE_ALARM",
	"BLOCK_SUSPEND",
	"AUDIT_READ",
	"PERFMON",
	"BPF",
	"CHECKPOINT_RESTORE",
}

// String returns the kernel name of the capability without the CAP_
// prefix, e.g. "NET_ADMIN".
func (c Cap) String() string {
	if int(c) < numCaps {
		return capNames[c]
	}
	return fmt.Sprintf("Cap(%d)", uint8(c))
}

// CapFromName returns the capability with the given name. Matching is
// case-insensitive and an optional "CAP_" prefix is accepted, so
// "NET_ADMIN", "cap_net_admin" and "net_admin" all name the same
// capability.
func CapFromName(name string) (Cap, error) {
	n := strings.TrimPrefix(strings.ToUpper(name), "CAP_")
	for i, s := range capNames {
		if s == n {
			return Cap(i), nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// LastCap returns the highest capability known to this build.
//
// The running kernel may know more (on newer kernels) or fewer (on
// older ones); see CapSetFromBitmask for how unknown bits are handled.
func LastCap() Cap {
	return Cap(numCaps - 1)
}

// AllCaps returns all capabilities known to this build in bit-position
// order. The returned slice is a fresh copy on every call.
func AllCaps() []Cap {
	caps := make([]Cap, numCaps)
	for i := range caps {
		caps[i] = Cap(i)
	}
	return caps
}
