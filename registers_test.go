package lgp

import "testing"

func TestNewRegistersZeroed(t *testing.T) {
	r := NewRegisters(4)
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
	for i := 0; i < 4; i++ {
		if r.Get(i) != 0 {
			t.Fatalf("Get(%d) = %v, want 0", i, r.Get(i))
		}
	}
}

func TestRegistersUpdateAndGet(t *testing.T) {
	r := NewRegisters(3)
	r.Update(1, 5.5)
	if r.Get(1) != 5.5 {
		t.Fatalf("Get(1) = %v, want 5.5", r.Get(1))
	}
}

func TestRegistersReset(t *testing.T) {
	r := NewRegisters(3)
	r.Update(0, 1)
	r.Update(1, 2)
	r.Reset()
	for i := 0; i < 3; i++ {
		if r.Get(i) != 0 {
			t.Fatalf("Get(%d) after Reset = %v, want 0", i, r.Get(i))
		}
	}
}

func TestRegistersSliceIsDefensiveCopy(t *testing.T) {
	r := NewRegisters(4)
	r.Update(0, 1)
	r.Update(1, 2)
	s := r.Slice(0, 2)
	s.Update(0, 99)
	if r.Get(0) != 1 {
		t.Fatalf("Slice aliased into the source bank: Get(0) = %v, want 1", r.Get(0))
	}
}

func TestRegistersClone(t *testing.T) {
	r := NewRegisters(2)
	r.Update(0, 7)
	c := r.Clone()
	c.Update(0, 8)
	if r.Get(0) != 7 {
		t.Fatalf("Clone aliased into the source bank: Get(0) = %v, want 7", r.Get(0))
	}
	if !r.Equal(Registers{7, 0}) {
		t.Fatalf("r = %v, want [7 0]", r)
	}
}

func TestRegistersArgMaxSingleWinner(t *testing.T) {
	r := Registers{1, 5, 2, 0}
	ties := r.ArgMax(0, 4)
	if len(ties) != 1 || ties[0] != 1 {
		t.Fatalf("ArgMax = %v, want [1]", ties)
	}
}

func TestRegistersArgMaxTies(t *testing.T) {
	r := Registers{3, 1, 3, 3}
	ties := r.ArgMax(0, 4)
	want := []int{0, 2, 3}
	if len(ties) != len(want) {
		t.Fatalf("ArgMax = %v, want %v", ties, want)
	}
	for i := range want {
		if ties[i] != want[i] {
			t.Fatalf("ArgMax = %v, want %v", ties, want)
		}
	}
}

func TestRegistersArgMaxRespectsWindow(t *testing.T) {
	r := Registers{9, 1, 2, 3}
	ties := r.ArgMax(1, 4)
	if len(ties) != 1 || ties[0] != 3 {
		t.Fatalf("ArgMax(1,4) = %v, want [3]", ties)
	}
}

func TestRegistersEqual(t *testing.T) {
	a := Registers{1, 2, 3}
	b := Registers{1, 2, 3}
	c := Registers{1, 2, 4}
	if !a.Equal(b) {
		t.Fatal("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Fatal("expected !a.Equal(c)")
	}
	if a.Equal(Registers{1, 2}) {
		t.Fatal("expected different-length banks to be unequal")
	}
}

func TestRegistersLess(t *testing.T) {
	a := Registers{1, 2}
	b := Registers{1, 3}
	if !a.Less(b) {
		t.Fatal("expected [1 2] < [1 3]")
	}
	if b.Less(a) {
		t.Fatal("expected !([1 3] < [1 2])")
	}
	if a.Less(a) {
		t.Fatal("expected !([1 2] < [1 2])")
	}
}
