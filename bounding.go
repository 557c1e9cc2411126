package capctl

import (
	"errors"

	"golang.org/x/sys/unix"

	raw "github.com/dralley/capctl/syscall"
)

// BoundingRead reports whether the given capability is in the bounding
// set of the current process.
func BoundingRead(c Cap) (bool, error) {
	r, err := raw.PrctlRetInt(raw.PR_CAPBSET_READ, uintptr(c), 0, 0, 0)
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// BoundingDrop removes the given capability from the bounding set of
// the current process, on all OS threads at the same time. It requires
// CAP_SETPCAP.
func BoundingDrop(c Cap) error {
	return raw.AllThreadsPrctl(raw.PR_CAPBSET_DROP, uintptr(c), 0, 0, 0)
}

// BoundingProbe returns the bounding capability set of the current
// process, probing one capability at a time.
func BoundingProbe() (CapSet, error) {
	return probeSet(BoundingRead)
}

// probeSet builds a CapSet by asking isSet about every capability this
// build knows. A kernel that knows fewer capabilities reports EINVAL
// for the ones it is missing; those are treated as absent rather than
// as a failure.
func probeSet(isSet func(Cap) (bool, error)) (CapSet, error) {
	var set CapSet
	for _, c := range AllCaps() {
		ok, err := isSet(c)
		if err != nil {
			if errors.Is(err, unix.EINVAL) && c > 0 {
				break
			}
			return CapSet{}, err
		}
		set.SetState(c, ok)
	}
	return set, nil
}
