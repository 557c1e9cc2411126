package capctl

import (
	"strings"

	raw "github.com/dralley/capctl/syscall"
)

// GetKeepCaps reports whether the "keep capabilities" flag of the
// current thread is set.
func GetKeepCaps() (bool, error) {
	r, err := raw.PrctlRetInt(raw.PR_GET_KEEPCAPS, 0, 0, 0, 0)
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// SetKeepCaps sets the "keep capabilities" flag of the current
// process, on all OS threads at the same time. With the flag set, the
// permitted set is retained when all the process's UIDs switch to
// non-zero values.
func SetKeepCaps(keep bool) error {
	var v uintptr
	if keep {
		v = 1
	}
	return raw.AllThreadsPrctl(raw.PR_SET_KEEPCAPS, v, 0, 0, 0)
}

// GetNoNewPrivs reports whether the no-new-privileges flag of the
// current thread is set.
func GetNoNewPrivs() (bool, error) {
	r, err := raw.PrctlRetInt(raw.PR_GET_NO_NEW_PRIVS, 0, 0, 0, 0)
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// SetNoNewPrivs sets the no-new-privileges flag of the current
// process, on all OS threads at the same time. The flag cannot be
// unset.
func SetNoNewPrivs() error {
	return raw.AllThreadsPrctl(raw.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0)
}

// Secbits is the securebits flag set of a process; see
// capabilities(7).
type Secbits uint32

const (
	SecbitNoRoot                  Secbits = 1 << 0
	SecbitNoRootLocked            Secbits = 1 << 1
	SecbitNoSetuidFixup           Secbits = 1 << 2
	SecbitNoSetuidFixupLocked     Secbits = 1 << 3
	SecbitKeepCaps                Secbits = 1 << 4
	SecbitKeepCapsLocked          Secbits = 1 << 5
	SecbitNoCapAmbientRaise       Secbits = 1 << 6
	SecbitNoCapAmbientRaiseLocked Secbits = 1 << 7
)

var secbitNames = []string{
	"NoRoot",
	"NoRootLocked",
	"NoSetuidFixup",
	"NoSetuidFixupLocked",
	"KeepCaps",
	"KeepCapsLocked",
	"NoCapAmbientRaise",
	"NoCapAmbientRaiseLocked",
}

func (s Secbits) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range secbitNames {
		if s&(1<<i) == 0 {
			continue
		}
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString(n)
	}
	b.WriteByte('}')
	return b.String()
}

// GetSecurebits returns the securebits flags of the current thread.
func GetSecurebits() (Secbits, error) {
	r, err := raw.PrctlRetInt(raw.PR_GET_SECUREBITS, 0, 0, 0, 0)
	if err != nil {
		return 0, err
	}
	return Secbits(r), nil
}

// SetSecurebits sets the securebits flags of the current process, on
// all OS threads at the same time. Changing most flags requires
// CAP_SETPCAP.
func SetSecurebits(s Secbits) error {
	return raw.AllThreadsPrctl(raw.PR_SET_SECUREBITS, uintptr(s), 0, 0, 0)
}
