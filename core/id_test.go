package core

import "testing"

// testMarker is a local marker type used only by this file's ID/Storage
// tests; it is not one of the real bindless resource kinds in id_bindless.go.
type testMarker struct{}

func (testMarker) marker() {}

func TestZipUnzip(t *testing.T) {
	raw := Zip(7, 3)
	index, epoch := raw.Unzip()
	if index != 7 || epoch != 3 {
		t.Fatalf("Unzip() = (%d, %d), want (7, 3)", index, epoch)
	}
	if raw.Index() != 7 {
		t.Errorf("Index() = %d, want 7", raw.Index())
	}
	if raw.Epoch() != 3 {
		t.Errorf("Epoch() = %d, want 3", raw.Epoch())
	}
}

func TestRawIDIsZero(t *testing.T) {
	if !RawID(0).IsZero() {
		t.Error("RawID(0).IsZero() = false, want true")
	}
	if Zip(1, 0).IsZero() {
		t.Error("Zip(1, 0).IsZero() = true, want false")
	}
}

func TestIDRoundTrip(t *testing.T) {
	id := NewID[testMarker](42, 5)
	index, epoch := id.Unzip()
	if index != 42 || epoch != 5 {
		t.Fatalf("Unzip() = (%d, %d), want (42, 5)", index, epoch)
	}

	fromRaw := FromRaw[testMarker](id.Raw())
	if fromRaw != id {
		t.Errorf("FromRaw(id.Raw()) = %v, want %v", fromRaw, id)
	}
}

func TestIDIsZero(t *testing.T) {
	var zero ID[testMarker]
	if !zero.IsZero() {
		t.Error("zero value ID.IsZero() = false, want true")
	}
	if NewID[testMarker](0, 1).IsZero() {
		t.Error("NewID(0, 1).IsZero() = true, want false")
	}
}

func TestStorageInsertGet(t *testing.T) {
	s := NewStorage[string, testMarker](0)
	id := NewID[testMarker](0, 0)
	s.Insert(id, "hello")

	got, ok := s.Get(id)
	if !ok || got != "hello" {
		t.Fatalf("Get() = (%q, %v), want (\"hello\", true)", got, ok)
	}
}

func TestStorageEpochMismatch(t *testing.T) {
	s := NewStorage[string, testMarker](0)
	s.Insert(NewID[testMarker](0, 0), "first")

	stale := NewID[testMarker](0, 0)
	s.Insert(NewID[testMarker](0, 1), "second")

	if _, ok := s.Get(stale); ok {
		t.Error("Get(stale) returned ok=true after epoch bump, want false")
	}
	got, ok := s.Get(NewID[testMarker](0, 1))
	if !ok || got != "second" {
		t.Fatalf("Get(current) = (%q, %v), want (\"second\", true)", got, ok)
	}
}

func TestStorageRemove(t *testing.T) {
	s := NewStorage[int, testMarker](0)
	id := NewID[testMarker](3, 0)
	s.Insert(id, 99)

	item, ok := s.Remove(id)
	if !ok || item != 99 {
		t.Fatalf("Remove() = (%d, %v), want (99, true)", item, ok)
	}
	if s.Contains(id) {
		t.Error("Contains() = true after Remove, want false")
	}
	if _, ok := s.Remove(id); ok {
		t.Error("second Remove() = true, want false")
	}
}

func TestStorageGetMut(t *testing.T) {
	s := NewStorage[int, testMarker](0)
	id := NewID[testMarker](0, 0)
	s.Insert(id, 1)

	ok := s.GetMut(id, func(v *int) { *v += 10 })
	if !ok {
		t.Fatal("GetMut() = false, want true")
	}
	got, _ := s.Get(id)
	if got != 11 {
		t.Errorf("Get() after GetMut = %d, want 11", got)
	}
}

func TestStorageForEachAndLen(t *testing.T) {
	s := NewStorage[int, testMarker](0)
	s.Insert(NewID[testMarker](0, 0), 10)
	s.Insert(NewID[testMarker](1, 0), 20)
	s.Insert(NewID[testMarker](2, 0), 30)
	if _, ok := s.Remove(NewID[testMarker](1, 0)); !ok {
		t.Fatal("Remove() = false, want true")
	}

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	seen := map[Index]int{}
	s.ForEach(func(id ID[testMarker], v int) bool {
		seen[id.Index()] = v
		return true
	})
	if len(seen) != 2 || seen[0] != 10 || seen[2] != 30 {
		t.Errorf("ForEach visited %v, want {0:10, 2:30}", seen)
	}
}

func TestStorageClear(t *testing.T) {
	s := NewStorage[int, testMarker](0)
	s.Insert(NewID[testMarker](0, 0), 1)
	s.Insert(NewID[testMarker](1, 0), 2)

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
	if s.Contains(NewID[testMarker](0, 0)) {
		t.Error("Contains() after Clear = true, want false")
	}
}
