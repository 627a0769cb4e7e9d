package csp

import "testing"

func TestIntervalDomainAddMerging(t *testing.T) {
	d := NewIntervalDomainSingleton(5)
	d.Add(7)
	if got := d.String(); got != "{5}U{7}" {
		t.Fatalf("got %s, want {5}U{7}", got)
	}
	d.Add(6)
	if got := d.String(); got != "[5..7]" {
		t.Fatalf("got %s, want [5..7] after bridging merge", got)
	}
	if d.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", d.Size())
	}
}

func TestIntervalDomainAddExtendsBothEnds(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	d.Add(0)
	d.Add(4)
	if got := d.String(); got != "[0..4]" {
		t.Fatalf("got %s, want [0..4]", got)
	}
	if d.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", d.Size())
	}
}

func TestIntervalDomainAddIsIdempotent(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	before := d.String()
	d.Add(2)
	if d.String() != before || d.Size() != 3 {
		t.Fatalf("Add of an existing value must be a no-op")
	}
}

func TestIntervalDomainAddDisjointSequence(t *testing.T) {
	d := NewIntervalDomainRange(-3, 2)
	d.Add(5)
	d.Add(4)
	d.Add(-5)
	d.Add(-4)
	if got := d.String(); got != "[-5..2]U[4..5]" {
		t.Fatalf("got %s, want [-5..2]U[4..5]", got)
	}
	// Derived from the interval string itself: [-5..2] has 8 values, [4..5]
	// has 2, for a total of 10.
	if d.Size() != 10 {
		t.Fatalf("Size() = %d, want 10 (sum of the two intervals above)", d.Size())
	}
}

func TestIntervalDomainRemoveSplitsInterval(t *testing.T) {
	d := NewIntervalDomainRange(1, 5)
	d.Remove(3)
	if got := d.String(); got != "[1..2]U[4..5]" {
		t.Fatalf("got %s, want [1..2]U[4..5]", got)
	}
	if d.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", d.Size())
	}
}

func TestIntervalDomainRemoveShrinksEnds(t *testing.T) {
	d := NewIntervalDomainRange(1, 5)
	d.Remove(1)
	d.Remove(5)
	if got := d.String(); got != "[2..4]" {
		t.Fatalf("got %s, want [2..4]", got)
	}
}

func TestIntervalDomainRemoveSingletonDeletesInterval(t *testing.T) {
	d := NewIntervalDomainSingleton(5)
	if !d.Remove(5) {
		t.Fatalf("expected Remove to report the value was present")
	}
	if got := d.String(); got != "[]" {
		t.Fatalf("got %s, want []", got)
	}
	if d.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", d.Size())
	}
	if d.Remove(5) {
		t.Fatalf("Remove of an absent value must report false")
	}
}

func TestIntervalDomainIteratorWalksInOrder(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	it := d.Iterator()

	var got []int
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, v)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIntervalDomainIteratorRemoveResumesAfterGap(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	it := d.Iterator()

	v, err := it.Next()
	if err != nil || v != 1 {
		t.Fatalf("Next() = %d, %v; want 1, nil", v, err)
	}
	v, err = it.Next()
	if err != nil || v != 2 {
		t.Fatalf("Next() = %d, %v; want 2, nil", v, err)
	}
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := d.String(); got != "{1}U{3}" {
		t.Fatalf("got %s, want {1}U{3}", got)
	}
	if !it.HasNext() {
		t.Fatalf("expected HasNext after removing the middle element")
	}
	v, err = it.Next()
	if err != nil || v != 3 {
		t.Fatalf("Next() = %d, %v; want 3, nil", v, err)
	}
	if it.HasNext() {
		t.Fatalf("expected no further elements")
	}
}

func TestIntervalDomainIteratorRemoveFirstElement(t *testing.T) {
	d := NewIntervalDomainRange(1, 3)
	it := d.Iterator()
	it.Next()
	if err := it.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if got := d.String(); got != "[2..3]" {
		t.Fatalf("got %s, want [2..3]", got)
	}
	v, err := it.Next()
	if err != nil || v != 2 {
		t.Fatalf("Next() = %d, %v; want 2, nil", v, err)
	}
}

func TestIntervalDomainEqual(t *testing.T) {
	a := NewIntervalDomainRange(1, 5)
	a.Remove(3)
	b := NewIntervalDomain()
	b.Add(1)
	b.Add(2)
	b.Add(4)
	b.Add(5)
	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}
	b.Add(3)
	if a.Equal(b) {
		t.Fatalf("expected %s to not equal %s", a, b)
	}
}

func TestIntervalDomainGetIndexOf(t *testing.T) {
	d := NewIntervalDomainRange(1, 5)
	d.Remove(3)
	for i, want := range []int{1, 2, 4, 5} {
		got, err := d.Get(i)
		if err != nil || got != want {
			t.Fatalf("Get(%d) = %d, %v; want %d, nil", i, got, err, want)
		}
		if idx := d.IndexOf(want); idx != i {
			t.Fatalf("IndexOf(%d) = %d, want %d", want, idx, i)
		}
	}
	if d.IndexOf(3) != -1 {
		t.Fatalf("IndexOf(3) should be -1 after removal")
	}
	if _, err := d.Get(4); err == nil {
		t.Fatalf("expected OutOfRange for Get(4)")
	}
}
