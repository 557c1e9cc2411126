package capctl

import (
	"math/bits"
	"strings"
)

// CapSet is a set of capabilities, stored internally as a bitmask.
//
// The zero value is the empty set. CapSet values are comparable with
// == and usable as map keys. Methods that add or remove a single
// capability mutate the receiver; the boolean-algebra operations
// (Union, Intersection, ...) are pure and return a new set.
type CapSet struct {
	bits uint64
}

// CapSetOf returns the set containing exactly the given capabilities.
func CapSetOf(caps ...Cap) CapSet {
	var s CapSet
	s.AddAll(caps...)
	return s
}

// CapSetFromBitmask returns the set described by a raw bitmask with
// one bit per capability bit position.
//
// Bits outside the range of capabilities known to this build are
// silently discarded, not rejected. A newer kernel may hand us
// bitmasks with capabilities this build does not know about; masking
// keeps decoding such data from failing hard.
func CapSetFromBitmask(mask uint64) CapSet {
	return CapSet{bits: mask & capBitmask}
}

func capSetFromWords(lower, upper uint32) CapSet {
	return CapSetFromBitmask(uint64(upper)<<32 | uint64(lower))
}

// capBit returns the bitmask with only the given capability's bit set,
// or zero for a capability outside the known range.
func capBit(c Cap) uint64 {
	return (uint64(1) << c) & capBitmask
}

// Bitmask returns the raw bitmask underlying the set.
func (s CapSet) Bitmask() uint64 {
	return s.bits
}

// IsEmpty reports whether the set contains no capabilities.
func (s CapSet) IsEmpty() bool {
	return s.bits == 0
}

// Size returns the number of capabilities in the set.
func (s CapSet) Size() int {
	return bits.OnesCount64(s.bits)
}

// Has reports whether the set contains the given capability.
func (s CapSet) Has(c Cap) bool {
	return s.bits&capBit(c) != 0
}

// Add adds the given capability to the set.
func (s *CapSet) Add(c Cap) {
	s.bits |= capBit(c)
}

// Drop removes the given capability from the set.
func (s *CapSet) Drop(c Cap) {
	s.bits &^= capBit(c)
}

// SetState adds the capability if val is true and drops it otherwise.
func (s *CapSet) SetState(c Cap, val bool) {
	if val {
		s.Add(c)
	} else {
		s.Drop(c)
	}
}

// AddAll adds each of the given capabilities to the set.
//
// This is element-wise addition. To merge in a whole CapSet, use
// s = s.Union(other), not AddAll.
func (s *CapSet) AddAll(caps ...Cap) {
	for _, c := range caps {
		s.Add(c)
	}
}

// DropAll removes each of the given capabilities from the set.
//
// This is element-wise removal. To subtract a whole CapSet, use
// s = s.Difference(other), not DropAll.
func (s *CapSet) DropAll(caps ...Cap) {
	for _, c := range caps {
		s.Drop(c)
	}
}

// Clear removes all capabilities from the set.
func (s *CapSet) Clear() {
	s.bits = 0
}

// Union returns the set of capabilities present in s or other.
func (s CapSet) Union(other CapSet) CapSet {
	return CapSet{bits: s.bits | other.bits}
}

// Intersection returns the set of capabilities present in both s and
// other.
func (s CapSet) Intersection(other CapSet) CapSet {
	return CapSet{bits: s.bits & other.bits}
}

// Xor returns the set of capabilities present in exactly one of s and
// other.
func (s CapSet) Xor(other CapSet) CapSet {
	return CapSet{bits: s.bits ^ other.bits}
}

// Difference returns the set of capabilities present in s but not in
// other.
func (s CapSet) Difference(other CapSet) CapSet {
	return CapSet{bits: s.bits &^ other.bits}
}

// Not returns the complement of s with respect to the capabilities
// known to this build. The complement of a full set is the empty set;
// bit positions without an assigned capability stay clear.
func (s CapSet) Not() CapSet {
	return CapSet{bits: ^s.bits & capBitmask}
}

// Iter returns an iterator over the capabilities in the set in
// ascending bit-position order.
func (s CapSet) Iter() CapSetIter {
	return CapSetIter{set: s}
}

// String renders the set in set notation, e.g. "{CHOWN, FOWNER}".
// Members appear in ascending bit-position order; the empty set
// renders as "{}".
func (s CapSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	it := s.Iter()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	b.WriteByte('}')
	return b.String()
}

// CapSetIter iterates over the capabilities in a CapSet in ascending
// bit-position order. It is created by CapSet.Iter. Copying a
// CapSetIter yields an independent iterator at the same position.
type CapSetIter struct {
	set CapSet
	pos uint8
}

// Next returns the next capability in the set, or ok == false once the
// iterator is exhausted.
func (it *CapSetIter) Next() (c Cap, ok bool) {
	for int(it.pos) < numCaps {
		c := Cap(it.pos)
		it.pos++
		if it.set.Has(c) {
			return c, true
		}
	}
	return 0, false
}

// Remaining returns the number of capabilities Next has not yet
// yielded. It runs in constant time.
func (it *CapSetIter) Remaining() int {
	return bits.OnesCount64(it.set.bits >> it.pos)
}

// Last returns the final capability the iterator will yield, without
// advancing it, or ok == false if the iterator is exhausted. It runs
// in constant time.
func (it *CapSetIter) Last() (c Cap, ok bool) {
	// Position of the highest set bit, plus one.
	n := 64 - bits.LeadingZeros64(it.set.bits)
	if int(it.pos) < n {
		return Cap(n - 1), true
	}
	return 0, false
}
