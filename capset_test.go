package capctl

import "testing"

func capsOf(s CapSet) []Cap {
	var out []Cap
	it := s.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		out = append(out, c)
	}
	return out
}

func capsEqual(a, b []Cap) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func fullCapSet() CapSet {
	return CapSetOf(AllCaps()...)
}

func TestCapSetEmpty(t *testing.T) {
	var zero CapSet
	if !zero.IsEmpty() || zero.Size() != 0 {
		t.Errorf("zero CapSet is not empty: %v", zero)
	}
	if got := CapSetOf(); got != zero {
		t.Errorf("CapSetOf() = %v, want the empty set", got)
	}

	s := fullCapSet()
	for _, c := range AllCaps() {
		s.Drop(c)
	}
	if !s.IsEmpty() {
		t.Errorf("dropping every capability left %v", s)
	}

	s = fullCapSet()
	s.Clear()
	if !s.IsEmpty() {
		t.Errorf("Clear() left %v", s)
	}
	for _, c := range AllCaps() {
		if s.Has(c) {
			t.Errorf("empty set has %v", c)
		}
	}
}

func TestCapSetFull(t *testing.T) {
	var s CapSet
	for _, c := range AllCaps() {
		s.Add(c)
	}
	if s.Bitmask() != capBitmask {
		t.Errorf("full set bitmask = %#x, want %#x", s.Bitmask(), capBitmask)
	}
	if s.Size() != len(AllCaps()) {
		t.Errorf("full set size = %d, want %d", s.Size(), len(AllCaps()))
	}
	for _, c := range AllCaps() {
		if !s.Has(c) {
			t.Errorf("full set is missing %v", c)
		}
	}
}

func TestCapSetAddDrop(t *testing.T) {
	var s CapSet
	s.Add(CapChown)
	if !s.Has(CapChown) || s.IsEmpty() {
		t.Errorf("after Add(CHOWN): %v", s)
	}

	s.Drop(CapChown)
	if s.Has(CapChown) || !s.IsEmpty() {
		t.Errorf("after Drop(CHOWN): %v", s)
	}

	s.SetState(CapChown, true)
	if !s.Has(CapChown) {
		t.Errorf("after SetState(CHOWN, true): %v", s)
	}
	s.SetState(CapChown, false)
	if !s.IsEmpty() {
		t.Errorf("after SetState(CHOWN, false): %v", s)
	}

	// Add and Drop are idempotent.
	s.Add(CapKill)
	s.Add(CapKill)
	if s.Size() != 1 {
		t.Errorf("double Add gave size %d", s.Size())
	}
	s.Drop(CapKill)
	s.Drop(CapKill)
	if !s.IsEmpty() {
		t.Errorf("double Drop left %v", s)
	}
}

func TestCapSetAddAllDropAll(t *testing.T) {
	var s CapSet
	s.AddAll(CapFowner, CapChown, CapKill)

	// Iteration is in bit order, not insertion order.
	if got := capsOf(s); !capsEqual(got, []Cap{CapChown, CapFowner, CapKill}) {
		t.Errorf("capsOf = %v", got)
	}

	s.DropAll(CapFowner, CapChown)
	if got := capsOf(s); !capsEqual(got, []Cap{CapKill}) {
		t.Errorf("after DropAll: %v", got)
	}

	s.DropAll(CapKill)
	if got := capsOf(s); len(got) != 0 {
		t.Errorf("after dropping everything: %v", got)
	}
}

func TestCapSetAlgebra(t *testing.T) {
	a := CapSetOf(CapChown, CapFowner)
	b := CapSetOf(CapFowner, CapKill)

	if got := a.Union(b); got != CapSetOf(CapChown, CapFowner, CapKill) {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersection(b); got != CapSetOf(CapFowner) {
		t.Errorf("Intersection = %v", got)
	}
	if got := a.Xor(b); got != CapSetOf(CapChown, CapKill) {
		t.Errorf("Xor = %v", got)
	}
	if got := a.Difference(b); got != CapSetOf(CapChown) {
		t.Errorf("Difference = %v", got)
	}
}

func TestCapSetAlgebraIdentities(t *testing.T) {
	full := fullCapSet()
	for _, s := range []CapSet{
		{},
		CapSetOf(CapChown, CapFowner),
		CapSetOf(CapSyslog, CapCheckpointRestore),
		full,
	} {
		if got := s.Union(s.Not()); got != full {
			t.Errorf("%v | !%v = %v, want full set", s, s, got)
		}
		if got := s.Intersection(s.Not()); !got.IsEmpty() {
			t.Errorf("%v & !%v = %v, want empty set", s, s, got)
		}
		other := CapSetOf(CapFowner, CapNetAdmin)
		if got, want := s.Difference(other), s.Intersection(other.Not()); got != want {
			t.Errorf("%v - %v = %v, want %v", s, other, got, want)
		}
	}
}

func TestCapSetNot(t *testing.T) {
	if got := fullCapSet().Not(); !got.IsEmpty() {
		t.Errorf("!full = %v, want empty set", got)
	}
	var empty CapSet
	if got := empty.Not(); got != fullCapSet() {
		t.Errorf("!empty = %v, want full set", got)
	}

	a := fullCapSet()
	a.Drop(CapChown)
	if got := a.Not(); got != CapSetOf(CapChown) {
		t.Errorf("!(full - CHOWN) = %v, want {CHOWN}", got)
	}
}

func TestCapSetFromBitmaskTruncates(t *testing.T) {
	// Out-of-range bits are masked off, not rejected.
	if got := CapSetFromBitmask(^uint64(0)); got != fullCapSet() {
		t.Errorf("CapSetFromBitmask(all ones) = %v, want full set", got)
	}
	if got := CapSetFromBitmask(uint64(1) << 63); !got.IsEmpty() {
		t.Errorf("CapSetFromBitmask(1<<63) = %v, want empty set", got)
	}
	if got := CapSetFromBitmask(1 | uint64(1)<<63); got != CapSetOf(CapChown) {
		t.Errorf("CapSetFromBitmask(1 | 1<<63) = %v, want {CHOWN}", got)
	}
}

func TestCapSetString(t *testing.T) {
	for _, tc := range []struct {
		s    CapSet
		want string
	}{
		{CapSet{}, "{}"},
		{CapSetOf(CapChown), "{CHOWN}"},
		{CapSetOf(CapFowner, CapChown), "{CHOWN, FOWNER}"},
		{CapSetOf(CapSyslog, CapChown, CapNetRaw), "{CHOWN, NET_RAW, SYSLOG}"},
	} {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("CapSet.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestCapSetIterRemaining(t *testing.T) {
	for _, s := range []CapSet{
		{},
		CapSetOf(CapChown, CapFowner),
		fullCapSet(),
	} {
		count := s.Size()
		it := s.Iter()
		if it.Remaining() != count {
			t.Fatalf("fresh iterator Remaining() = %d, want %d", it.Remaining(), count)
		}
		for {
			clone := it
			if clone.Remaining() != it.Remaining() {
				t.Fatalf("cloned iterator disagrees on Remaining")
			}
			if _, ok := it.Next(); !ok {
				break
			}
			count--
			if it.Remaining() != count {
				t.Fatalf("Remaining() = %d after yield, want %d", it.Remaining(), count)
			}
		}
		if count != 0 {
			t.Errorf("iterator of %v ended with %d elements unaccounted", s, count)
		}
		if it.Remaining() != 0 {
			t.Errorf("exhausted iterator Remaining() = %d", it.Remaining())
		}
	}
}

func TestCapSetIterLast(t *testing.T) {
	it := fullCapSet().Iter()
	if last, ok := it.Last(); !ok || last != LastCap() {
		t.Errorf("full set Last() = %v, %v", last, ok)
	}

	it = CapSet{}.Iter()
	if _, ok := it.Last(); ok {
		t.Error("empty set Last() reported ok")
	}

	// Last() keeps returning the maximum member until the iterator
	// passes it.
	it = CapSetOf(CapChown, CapFowner).Iter()
	if last, ok := it.Last(); !ok || last != CapFowner {
		t.Errorf("Last() = %v, %v, want FOWNER", last, ok)
	}
	if c, ok := it.Next(); !ok || c != CapChown {
		t.Fatalf("Next() = %v, %v, want CHOWN", c, ok)
	}
	if last, ok := it.Last(); !ok || last != CapFowner {
		t.Errorf("Last() after one yield = %v, %v, want FOWNER", last, ok)
	}
	if c, ok := it.Next(); !ok || c != CapFowner {
		t.Fatalf("Next() = %v, %v, want FOWNER", c, ok)
	}
	if _, ok := it.Last(); ok {
		t.Error("Last() reported ok after the maximum member was yielded")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() reported ok on an exhausted iterator")
	}
}

func TestCapSetIterClone(t *testing.T) {
	it := CapSetOf(CapChown, CapNetAdmin, CapSyslog).Iter()
	if c, ok := it.Next(); !ok || c != CapChown {
		t.Fatalf("Next() = %v, %v", c, ok)
	}

	clone := it
	want := []Cap{CapNetAdmin, CapSyslog}
	if got := collect(&it); !capsEqual(got, want) {
		t.Errorf("original yielded %v, want %v", got, want)
	}
	if got := collect(&clone); !capsEqual(got, want) {
		t.Errorf("clone yielded %v, want %v", got, want)
	}
}

func collect(it *CapSetIter) []Cap {
	var out []Cap
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		out = append(out, c)
	}
	return out
}

func TestCapSetSizeMatchesIteration(t *testing.T) {
	for _, s := range []CapSet{
		{},
		CapSetOf(CapChown),
		CapSetOf(CapChown, CapSyslog, CapBpf),
		fullCapSet(),
	} {
		if got := len(capsOf(s)); got != s.Size() {
			t.Errorf("set %v: iteration yielded %d elements, Size() = %d", s, got, s.Size())
		}
	}
}
