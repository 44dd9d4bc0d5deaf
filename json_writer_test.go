package wealthsense

import (
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("ordered keys", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("version", BackupVersion)
		w.Append("accounts", []Account{})
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"version":"1.0","accounts":[]}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("count", 0) // a zero value is still added by Append
		w.Optional("pin", "")
		w.Optional("color", "indigo")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"count":0,"color":"indigo"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional pointer", func(t *testing.T) {
		// The backup document's pin key depends on this: nil is skipped,
		// a set pointer marshals to the pointee.
		var w jsonObjectWriter
		var unset *string
		pin := "1234"
		w.Optional("pin", unset)
		w.Optional("newPin", &pin)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"newPin":"1234"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}
