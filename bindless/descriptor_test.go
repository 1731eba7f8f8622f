package bindless

import "testing"

func TestIndex_AllocSequential(t *testing.T) {
	a := NewIndex(8)

	first, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if first != 0 {
		t.Errorf("first alloc = %d, want 0", first)
	}

	second, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if second != 1 {
		t.Errorf("second alloc = %d, want 1", second)
	}
}

func TestIndex_FreeReusesLowestSlot(t *testing.T) {
	a := NewIndex(8)

	id0, _ := a.Alloc()
	id1, _ := a.Alloc()
	_, _ = a.Alloc()

	a.Free(id1)

	reused, err := a.Alloc()
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if reused != id1 {
		t.Errorf("Alloc after Free = %d, want reused slot %d", reused, id1)
	}

	a.Free(id0)
	if a.Outstanding() != 2 {
		t.Errorf("Outstanding() = %d, want 2", a.Outstanding())
	}
}

func TestIndex_ExhaustionReturnsError(t *testing.T) {
	a := NewIndex(2)

	if _, err := a.Alloc(); err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if _, err := a.Alloc(); err != nil {
		t.Fatalf("Alloc: %v", err)
	}

	if _, err := a.Alloc(); err != ErrDescriptorSetFull {
		t.Errorf("Alloc on full set = %v, want ErrDescriptorSetFull", err)
	}
}

func TestIndex_NeverOutstandingMoreThanCreated(t *testing.T) {
	a := NewIndex(100)

	ids := make([]ID, 0, 100)
	for i := 0; i < 100; i++ {
		id, err := a.Alloc()
		if err != nil {
			t.Fatalf("Alloc: %v", err)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		a.Free(id)
	}

	stats := a.Stats()
	if stats.Allocated != 100 || stats.Freed != 100 {
		t.Errorf("Stats() = %+v, want Allocated=100 Freed=100", stats)
	}
	if a.Outstanding() != 0 {
		t.Errorf("Outstanding() = %d, want 0", a.Outstanding())
	}
}

func TestNull_IsNotValid(t *testing.T) {
	if Null.IsValid() {
		t.Errorf("Null.IsValid() = true, want false")
	}
}
