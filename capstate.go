package capctl

import (
	raw "github.com/dralley/capctl/syscall"
)

// CapState represents the effective, permitted and inheritable
// capability sets of a process.
type CapState struct {
	Effective   CapSet
	Permitted   CapSet
	Inheritable CapSet
}

// GetCapState retrieves the capability state of the process with the
// given PID. A pid of 0 selects the current process.
func GetCapState(pid int) (CapState, error) {
	hdr := raw.CapUserHeader{Version: raw.LinuxCapabilityVersion3, Pid: int32(pid)}
	var data [2]raw.CapUserData

	if err := raw.Capget(&hdr, &data); err != nil {
		return CapState{}, err
	}
	return CapState{
		Effective:   capSetFromWords(data[0].Effective, data[1].Effective),
		Permitted:   capSetFromWords(data[0].Permitted, data[1].Permitted),
		Inheritable: capSetFromWords(data[0].Inheritable, data[1].Inheritable),
	}, nil
}

// SetCurrent applies s as the capability state of the current process,
// on all OS threads at the same time.
func (s CapState) SetCurrent() error {
	hdr := raw.CapUserHeader{Version: raw.LinuxCapabilityVersion3}
	data := [2]raw.CapUserData{
		{
			Effective:   uint32(s.Effective.bits),
			Permitted:   uint32(s.Permitted.bits),
			Inheritable: uint32(s.Inheritable.bits),
		},
		{
			Effective:   uint32(s.Effective.bits >> 32),
			Permitted:   uint32(s.Permitted.bits >> 32),
			Inheritable: uint32(s.Inheritable.bits >> 32),
		},
	}
	return raw.AllThreadsCapset(&hdr, &data)
}
