package cli

import (
	"testing"
)

// ---- getStatus ----

func TestGetStatus_Empty(t *testing.T) {
	a := &App{}
	got := a.getStatus()
	if got != "" {
		t.Fatalf("want empty status, got %q", got)
	}
}

func TestGetStatus_WithUsernameOnly(t *testing.T) {
	a := &App{userName: "alice"}
	got := a.getStatus()
	want := "(alice )"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestGetStatus_WithUsernameAndMode(t *testing.T) {
	a := &App{userName: "alice", Mode: ModeOnline}
	got := a.getStatus()
	want := "(alice online)"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
