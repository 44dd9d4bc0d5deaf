package kv

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openTestStore(t)

	if _, exists, err := s.Get("missing"); err != nil || exists {
		t.Fatalf("Get(missing) = exists=%v err=%v, want absent", exists, err)
	}

	if err := s.Put("accounts", []byte(`[{"id":"acc_1"}]`)); err != nil {
		t.Fatal(err)
	}
	value, exists, err := s.Get("accounts")
	if err != nil {
		t.Fatal(err)
	}
	if !exists || !bytes.Equal(value, []byte(`[{"id":"acc_1"}]`)) {
		t.Errorf("Get = %q exists=%v", value, exists)
	}

	// Put replaces.
	if err := s.Put("accounts", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	value, _, err = s.Get("accounts")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(value, []byte(`[]`)) {
		t.Errorf("Get after replace = %q, want []", value)
	}
}

func TestStore_Delete(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put("pin", []byte("1234")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("pin"); err != nil {
		t.Fatal(err)
	}
	if _, exists, err := s.Get("pin"); err != nil || exists {
		t.Errorf("key still present after delete, err=%v", err)
	}
	// Deleting an absent key is fine.
	if err := s.Delete("pin"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

func TestStore_Keys(t *testing.T) {
	s := openTestStore(t)

	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Fatalf("fresh store keys = %v, want none", keys)
	}

	for _, k := range []string{"transactions", "accounts", "bills"} {
		if err := s.Put(k, []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}
	keys, err = s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"accounts", "bills", "transactions"}
	if !slices.Equal(keys, want) {
		t.Errorf("Keys = %v, want %v (sorted)", keys, want)
	}
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put("accounts", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, exists, err := s.Get("accounts"); err != nil || !exists {
		t.Errorf("value lost across reopen, exists=%v err=%v", exists, err)
	}
}
