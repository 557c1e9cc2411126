package capctl

import (
	raw "github.com/dralley/capctl/syscall"
)

// AmbientRaise adds the given capability to the ambient set of the
// current process. The capability must already be in both the
// permitted and the inheritable set.
func AmbientRaise(c Cap) error {
	return raw.Prctl(raw.PR_CAP_AMBIENT, raw.PR_CAP_AMBIENT_RAISE, uintptr(c), 0, 0)
}

// AmbientLower removes the given capability from the ambient set of
// the current process.
func AmbientLower(c Cap) error {
	return raw.Prctl(raw.PR_CAP_AMBIENT, raw.PR_CAP_AMBIENT_LOWER, uintptr(c), 0, 0)
}

// AmbientIsSet reports whether the given capability is in the ambient
// set of the current process.
func AmbientIsSet(c Cap) (bool, error) {
	r, err := raw.PrctlRetInt(raw.PR_CAP_AMBIENT, raw.PR_CAP_AMBIENT_IS_SET, uintptr(c), 0, 0)
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// AmbientClearAll removes all capabilities from the ambient set of the
// current process.
func AmbientClearAll() error {
	return raw.Prctl(raw.PR_CAP_AMBIENT, raw.PR_CAP_AMBIENT_CLEAR_ALL, 0, 0, 0)
}

// AmbientProbe returns the ambient capability set of the current
// process, probing one capability at a time.
func AmbientProbe() (CapSet, error) {
	return probeSet(AmbientIsSet)
}
