package maze

import (
	"math/rand/v2"
	"testing"
)

func TestFrontierAddIgnoresDuplicates(t *testing.T) {
	var f Frontier
	if !f.Add(3) {
		t.Fatal("first add should insert")
	}
	if f.Add(3) {
		t.Fatal("duplicate add should be a no-op")
	}
	f.Add(7)
	if f.Len() != 2 {
		t.Fatalf("len = %d, want 2", f.Len())
	}
	if !f.Remove(3) || f.Has(3) {
		t.Fatal("remove should drop member 3")
	}
	if f.Remove(3) {
		t.Fatal("removing a missing member should report false")
	}
}

func TestFrontierPopRandomDrains(t *testing.T) {
	var f Frontier
	for i := 0; i < 50; i++ {
		f.Add(i)
	}
	r := rand.New(rand.NewPCG(9, 0))
	seen := make(map[int]bool)
	for f.Len() > 0 {
		c := f.PopRandom(r)
		if seen[c] {
			t.Fatalf("cell %d popped twice", c)
		}
		seen[c] = true
		if f.Has(c) {
			t.Fatalf("cell %d still a member after pop", c)
		}
	}
	if len(seen) != 50 {
		t.Fatalf("popped %d cells, want 50", len(seen))
	}
	if got := f.PopRandom(r); got != -1 {
		t.Fatalf("pop on empty = %d, want -1", got)
	}
}
