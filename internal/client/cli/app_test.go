package cli

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"
)

func TestIsLoggedIn_EmptyUserID(t *testing.T) {
	app := &App{}
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false when userID is empty")
	}
}

func TestIsLoggedIn_NonEmptyUserID(t *testing.T) {
	app := &App{userID: "id1"}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true when userID is set")
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to remain %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change to offline, got empty")
	}
}

func TestOnlineStatusWatcher_SwitchesModes(t *testing.T) {
	var buf bytes.Buffer
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	f := &fakeAuth{}
	app := &App{authService: f, Mode: ModeOffline}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 10*time.Millisecond)
		close(done)
	}()

	// ping succeeds, watcher should flip to online
	deadline := time.After(2 * time.Second)
	for app.Mode != ModeOnline {
		select {
		case <-deadline:
			t.Fatal("watcher did not switch to online mode")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after context cancel")
	}
}
