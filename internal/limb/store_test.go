package limb

import "testing"

func TestAllocateInlineBelowThreshold(t *testing.T) {
	s, err := Allocate(10, 1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if s.Backing() != Inline {
		t.Fatalf("backing = %v, want Inline", s.Backing())
	}
	if s.Len() != 10 {
		t.Fatalf("len = %d, want 10", s.Len())
	}
	for _, b := range s.View() {
		if b != 0 {
			t.Fatal("freshly allocated store must be zeroed")
		}
	}
}

func TestAllocateMappedAtThreshold(t *testing.T) {
	s, err := Allocate(1024, 1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if s.Backing() != Mapped {
		t.Fatalf("backing = %v, want Mapped at threshold", s.Backing())
	}
}

func TestAllocateRejectsNonPositiveLength(t *testing.T) {
	if _, err := Allocate(0, 1024); err == nil {
		t.Fatal("expected error for length 0")
	}
}

func TestSetLengthShrinks(t *testing.T) {
	s, err := Allocate(10, 1024)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	s.SetLength(4)
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
	if len(s.View()) != 4 {
		t.Fatalf("view len = %d, want 4", len(s.View()))
	}
}

func TestGrowMigratesBackingAcrossThreshold(t *testing.T) {
	s, err := Allocate(8, 100)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	view := s.ViewMut()
	view[0] = 42
	if err := s.Grow(200, 100); err != nil {
		t.Fatal(err)
	}
	if s.Backing() != Mapped {
		t.Fatalf("backing after growing past threshold = %v, want Mapped", s.Backing())
	}
	if s.Len() != 200 {
		t.Fatalf("len = %d, want 200", s.Len())
	}
	if s.View()[0] != 42 {
		t.Fatal("Grow must preserve existing limb contents")
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	s, err := Allocate(5, 1024)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Release(); err != nil {
		t.Fatal(err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("second Release must be a no-op, got error: %v", err)
	}
}

func TestAllocateFileBacked(t *testing.T) {
	s, err := AllocateFileBacked(16, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Release()
	if s.Backing() != Mapped {
		t.Fatalf("backing = %v, want Mapped", s.Backing())
	}
	if s.Len() != 16 {
		t.Fatalf("len = %d, want 16", s.Len())
	}
}
