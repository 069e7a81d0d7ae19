package diskvstore

import "testing"

func TestRoundTripAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "todo_app_v1")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, ok := s.ReadSnapshot(); ok {
		t.Fatalf("expected no snapshot yet")
	}
	if err := s.WriteSnapshot("[]"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := s.WriteSnapshot(`[{"id":"a","text":"x"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	reopened, err := New(dir, "todo_app_v1")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, ok := reopened.ReadSnapshot()
	if !ok || got != `[{"id":"a","text":"x"}]` {
		t.Fatalf("ReadSnapshot = %q, %v", got, ok)
	}
}

func TestKeysAreIsolated(t *testing.T) {
	dir := t.TempDir()
	a, _ := New(dir, "list_a")
	b, _ := New(dir, "list_b")
	if err := a.WriteSnapshot("[]"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := b.ReadSnapshot(); ok {
		t.Fatalf("list_b should be empty")
	}
}

func TestNewValidates(t *testing.T) {
	if _, err := New("", "k"); err == nil {
		t.Fatalf("expected error for empty dir")
	}
	if _, err := New(t.TempDir(), ""); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
