package csp

import (
	"fmt"
	"sort"
	"strings"
)

// interval is a closed integer range [lo, hi], lo <= hi.
type interval struct {
	lo, hi int
}

func (iv interval) size() int { return iv.hi - iv.lo + 1 }

// IntervalDomain represents a finite subset of integers as an ordered
// sequence of disjoint, non-adjacent closed intervals. The invariants are:
// intervals are sorted by lower bound; for any two consecutive intervals I1
// then I2, I2.lo >= I1.hi+2 (no touching, else they would have been
// merged); lo <= hi within each interval. These invariants make the
// interval grouping canonical, so two domains holding the same values
// always compare Equal.
//
// IntervalDomain is mutable and is intended to be owned by exactly one
// Variable during a search run; see SharedDomain.
type IntervalDomain struct {
	intervals []interval
	sz        int
}

// NewIntervalDomain returns an empty domain.
func NewIntervalDomain() *IntervalDomain {
	return &IntervalDomain{}
}

// NewIntervalDomainSingleton returns a domain containing exactly v.
func NewIntervalDomainSingleton(v int) *IntervalDomain {
	return &IntervalDomain{intervals: []interval{{v, v}}, sz: 1}
}

// NewIntervalDomainRange returns a domain containing every integer in
// [lo, hi]. It panics if lo > hi, matching the precondition in spec §4.1.
func NewIntervalDomainRange(lo, hi int) *IntervalDomain {
	if lo > hi {
		panic(fmt.Sprintf("csp: NewIntervalDomainRange: lo %d > hi %d", lo, hi))
	}
	return &IntervalDomain{intervals: []interval{{lo, hi}}, sz: hi - lo + 1}
}

// Size returns the number of values in the domain.
func (d *IntervalDomain) Size() int { return d.sz }

// Min returns the smallest value in the domain.
func (d *IntervalDomain) Min() (int, error) {
	if d.sz == 0 {
		return 0, &Empty{Op: "IntervalDomain.Min"}
	}
	return d.intervals[0].lo, nil
}

// Max returns the largest value in the domain.
func (d *IntervalDomain) Max() (int, error) {
	if d.sz == 0 {
		return 0, &Empty{Op: "IntervalDomain.Max"}
	}
	return d.intervals[len(d.intervals)-1].hi, nil
}

// Get returns the i-th element in ascending order.
func (d *IntervalDomain) Get(i int) (int, error) {
	if i < 0 || i >= d.sz {
		return 0, &OutOfRange{Op: "IntervalDomain.Get", Index: i, Size: d.sz}
	}
	cum := 0
	for _, iv := range d.intervals {
		n := iv.size()
		if i < cum+n {
			return iv.lo + (i - cum), nil
		}
		cum += n
	}
	panic("csp: IntervalDomain.Get: size invariant violated")
}

// IndexOf returns the ascending position of v, or -1 if v is absent.
func (d *IntervalDomain) IndexOf(v int) int {
	cum := 0
	for _, iv := range d.intervals {
		if v < iv.lo {
			return -1
		}
		if v <= iv.hi {
			return cum + (v - iv.lo)
		}
		cum += iv.size()
	}
	return -1
}

// Contains reports whether v is in the domain.
func (d *IntervalDomain) Contains(v int) bool {
	_, found := d.locateContaining(v)
	return found
}

// locateContaining returns the index of the interval that contains v (found
// == true), or the index of the first interval whose hi is >= v (the
// insertion point, found == false).
func (d *IntervalDomain) locateContaining(v int) (int, bool) {
	idx := sort.Search(len(d.intervals), func(i int) bool { return d.intervals[i].hi >= v })
	if idx < len(d.intervals) && d.intervals[idx].lo <= v {
		return idx, true
	}
	return idx, false
}

// Add inserts v, merging with an adjacent interval when possible. It is
// idempotent: adding a value already present is a no-op.
func (d *IntervalDomain) Add(v int) {
	if d.Contains(v) {
		return
	}

	// Find the first interval whose hi is >= v-1: either it touches v from
	// below (hi == v-1), contains/touches v from the lo side (lo <= v+1),
	// or v belongs strictly before it.
	idx := sort.Search(len(d.intervals), func(i int) bool { return d.intervals[i].hi >= v-1 })

	switch {
	case idx == len(d.intervals):
		if idx > 0 && d.intervals[idx-1].hi+1 == v {
			d.intervals[idx-1].hi = v
		} else {
			d.insertInterval(idx, interval{v, v})
		}
	case d.intervals[idx].lo-1 == v:
		d.intervals[idx].lo = v
		if idx > 0 && d.intervals[idx-1].hi+1 == d.intervals[idx].lo {
			d.intervals[idx-1].hi = d.intervals[idx].hi
			d.removeIntervalAt(idx)
		}
	case d.intervals[idx].hi+1 == v:
		d.intervals[idx].hi = v
		if idx+1 < len(d.intervals) && d.intervals[idx+1].lo == d.intervals[idx].hi+1 {
			d.intervals[idx].hi = d.intervals[idx+1].hi
			d.removeIntervalAt(idx + 1)
		}
	default:
		d.insertInterval(idx, interval{v, v})
	}

	d.sz++
}

// AddAll adds every value of other to d; the result is the set union.
func (d *IntervalDomain) AddAll(other *IntervalDomain) {
	for _, iv := range other.intervals {
		for v := iv.lo; v <= iv.hi; v++ {
			d.Add(v)
		}
	}
}

// Remove deletes v if present, splitting its interval when v is interior.
// It reports whether v was present.
func (d *IntervalDomain) Remove(v int) bool {
	idx, found := d.locateContaining(v)
	if !found {
		return false
	}
	d.removeValueFromInterval(idx, v)
	d.sz--
	return true
}

// removeValueFromInterval deletes v, known to lie within d.intervals[idx],
// mutating the interval list accordingly (delete / shrink-lo / shrink-hi /
// split) without touching d.sz.
func (d *IntervalDomain) removeValueFromInterval(idx, v int) {
	iv := d.intervals[idx]
	switch {
	case iv.lo == iv.hi:
		d.removeIntervalAt(idx)
	case v == iv.lo:
		d.intervals[idx].lo++
	case v == iv.hi:
		d.intervals[idx].hi--
	default:
		d.intervals[idx].hi = v - 1
		d.insertInterval(idx+1, interval{v + 1, iv.hi})
	}
}

// RemoveAt deletes and returns the i-th element in ascending order.
func (d *IntervalDomain) RemoveAt(i int) (int, error) {
	v, err := d.Get(i)
	if err != nil {
		return 0, err
	}
	d.Remove(v)
	return v, nil
}

// Clear empties the domain.
func (d *IntervalDomain) Clear() {
	d.intervals = d.intervals[:0]
	d.sz = 0
}

// Clone returns an independent copy of the domain.
func (d *IntervalDomain) Clone() *IntervalDomain {
	c := &IntervalDomain{intervals: make([]interval, len(d.intervals)), sz: d.sz}
	copy(c.intervals, d.intervals)
	return c
}

// Equal reports whether d and other contain exactly the same values. Since
// the interval grouping is canonical, this compares interval lists
// lexicographically.
func (d *IntervalDomain) Equal(other *IntervalDomain) bool {
	if other == nil || len(d.intervals) != len(other.intervals) {
		return false
	}
	for i := range d.intervals {
		if d.intervals[i] != other.intervals[i] {
			return false
		}
	}
	return true
}

// String renders the domain as spec §6 describes: "[]" when empty, "{v}"
// for a singleton interval, "[lo..hi]" for a range, and "I1UI2U..." for a
// union of several intervals.
func (d *IntervalDomain) String() string {
	if len(d.intervals) == 0 {
		return "[]"
	}
	parts := make([]string, len(d.intervals))
	for i, iv := range d.intervals {
		if iv.lo == iv.hi {
			parts[i] = fmt.Sprintf("{%d}", iv.lo)
		} else {
			parts[i] = fmt.Sprintf("[%d..%d]", iv.lo, iv.hi)
		}
	}
	return strings.Join(parts, "U")
}

// insertInterval grows the backing array geometrically (capacity *= 1.5,
// plus one) when full, then inserts iv at position i.
func (d *IntervalDomain) insertInterval(i int, iv interval) {
	n := len(d.intervals)
	if n == cap(d.intervals) {
		newCap := cap(d.intervals) + cap(d.intervals)/2 + 1
		grown := make([]interval, n, newCap)
		copy(grown, d.intervals)
		d.intervals = grown
	}
	d.intervals = d.intervals[:n+1]
	copy(d.intervals[i+1:], d.intervals[i:n])
	d.intervals[i] = iv
}

// removeIntervalAt deletes the interval at position i.
func (d *IntervalDomain) removeIntervalAt(i int) {
	copy(d.intervals[i:], d.intervals[i+1:])
	d.intervals = d.intervals[:len(d.intervals)-1]
}

// Iterator returns a forward cursor over the domain's values in ascending
// order, positioned before the first element.
func (d *IntervalDomain) Iterator() *IntervalIterator {
	it := &IntervalIterator{d: d}
	it.Reset()
	return it
}

// IntervalIterator is a position-tracking forward cursor over an
// IntervalDomain that remains valid across Remove calls: Remove repositions
// the cursor so that the following Next call yields the element that
// logically follows the removed value, whether the removal deleted an
// interval, shrank its lo, shrank its hi, or split it.
type IntervalIterator struct {
	d             *IntervalDomain
	globalIndex   int // position of the last value returned by Next, or -1
	intervalIndex int
	offset        int // offset within d.intervals[intervalIndex], or -1 before the first element
}

// Reset repositions the iterator before the first element.
func (it *IntervalIterator) Reset() {
	it.globalIndex = -1
	it.intervalIndex = 0
	it.offset = -1
}

// CurrentIndex returns the ascending position of the last value returned by
// Next, or -1 if Next has not been called since construction or Reset.
func (it *IntervalIterator) CurrentIndex() int { return it.globalIndex }

// HasNext reports whether a further call to Next would succeed.
func (it *IntervalIterator) HasNext() bool {
	return it.globalIndex+1 < it.d.Size()
}

// Next advances the cursor and returns the next value in ascending order.
func (it *IntervalIterator) Next() (int, error) {
	if !it.HasNext() {
		return 0, &IllegalState{Op: "IntervalIterator.Next", Reason: "no further elements"}
	}
	cur := it.d.intervals[it.intervalIndex]
	if it.offset+1 <= cur.hi-cur.lo {
		it.offset++
	} else {
		it.intervalIndex++
		it.offset = 0
		cur = it.d.intervals[it.intervalIndex]
	}
	it.globalIndex++
	return cur.lo + it.offset, nil
}

// Remove deletes the value last returned by Next and repositions the
// cursor so that the next Next call resumes correctly. It is an error to
// call Remove before the first Next (or after a Reset).
func (it *IntervalIterator) Remove() error {
	if it.globalIndex < 0 {
		return &IllegalState{Op: "IntervalIterator.Remove", Reason: "called before first Next"}
	}

	idx := it.intervalIndex
	iv := it.d.intervals[idx]
	v := iv.lo + it.offset

	// toPreceding repositions the cursor to the last element of the
	// interval before idx (or to the before-start sentinel if idx is the
	// first interval) — used when the removed value had no surviving
	// elements at or before it within its own interval.
	toPreceding := func(idx int) {
		if idx > 0 {
			pi := it.d.intervals[idx-1]
			it.intervalIndex = idx - 1
			it.offset = pi.hi - pi.lo
		} else {
			it.intervalIndex = 0
			it.offset = -1
		}
	}

	switch {
	case iv.lo == iv.hi:
		it.d.removeIntervalAt(idx)
		toPreceding(idx)
	case v == iv.lo:
		it.d.intervals[idx].lo++
		toPreceding(idx)
	case v == iv.hi:
		it.d.intervals[idx].hi--
		pi := it.d.intervals[idx]
		it.intervalIndex = idx
		it.offset = pi.hi - pi.lo
	default:
		it.d.intervals[idx].hi = v - 1
		it.d.insertInterval(idx+1, interval{v + 1, iv.hi})
		pi := it.d.intervals[idx]
		it.intervalIndex = idx
		it.offset = pi.hi - pi.lo
	}

	it.d.sz--
	it.globalIndex--
	return nil
}
