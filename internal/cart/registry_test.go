package cart

import "testing"

func TestRegistry_AssignsIDAndReusesStore(t *testing.T) {
	r := NewRegistry(nil)

	id, s := r.Get("")
	if id == "" {
		t.Fatal("expected an id to be assigned")
	}
	s.Add(perLbCake(), 1, 1, false)

	id2, s2 := r.Get(id)
	if id2 != id {
		t.Fatalf("expected same id back, got %s", id2)
	}
	if s2 != s {
		t.Fatal("expected the same store for the same id")
	}
	if s2.Count() != 1 {
		t.Fatalf("expected cart contents preserved, got count %d", s2.Count())
	}
}

func TestRegistry_DistinctIDsGetDistinctCarts(t *testing.T) {
	r := NewRegistry(nil)

	_, a := r.Get("a")
	_, b := r.Get("b")
	a.Add(perLbCake(), 1, 1, false)

	if b.Count() != 0 {
		t.Fatalf("expected cart b untouched, got count %d", b.Count())
	}
}
