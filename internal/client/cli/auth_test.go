package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dkazarov/libkeeper/internal/common"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeAuth struct {
	// Register
	regUser string
	regPass []byte
	regRet  string
	regErr  error

	// Login
	loginUser string
	loginPass []byte
	loginRet  string
	loginErr  error

	pingErr error
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) (string, error) {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regRet, f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (string, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginRet, f.loginErr
}
func (f *fakeAuth) Ping(ctx context.Context) error  { return f.pingErr }
func (f *fakeAuth) Close(ctx context.Context) error { return nil }

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{regRet: "id1"}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" {
		t.Fatalf("Register user mismatch: %q", f.regUser)
	}
	if string(f.regPass) != "secret" {
		t.Fatalf("Register pass mismatch: %q", string(f.regPass))
	}
}

func TestRegister_AlreadyExists_ReturnsError(t *testing.T) {
	f := &fakeAuth{regErr: common.ErrorAlreadyExists}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Register(context.Background()); !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want ErrorAlreadyExists, got %v", err)
	}
}

func TestLogin_Success_SetsIdentityAndMode(t *testing.T) {
	f := &fakeAuth{loginRet: "id1"}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if a.userName != "alice" || a.userID != "id1" {
		t.Fatalf("identity not set: %q %q", a.userName, a.userID)
	}
	if a.Mode != ModeOnline {
		t.Fatalf("want online mode, got %q", a.Mode)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true")
	}
}

func TestLogin_NotFound_ReturnsError(t *testing.T) {
	f := &fakeAuth{loginErr: common.ErrorNotFound}
	a := &App{authService: f}

	restore := stubInputs(t, "ghost", []byte("secret"))
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after failure")
	}
}

func TestLogin_IncorrectPassword_ReturnsError(t *testing.T) {
	f := &fakeAuth{loginErr: common.ErrIncorrectPassword}
	a := &App{authService: f}

	restore := stubInputs(t, "alice", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); !errors.Is(err, common.ErrIncorrectPassword) {
		t.Fatalf("want ErrIncorrectPassword, got %v", err)
	}
}

func TestLogout_ClearsIdentity(t *testing.T) {
	f := &fakeAuth{}
	a := &App{authService: f, userName: "alice", userID: "id1"}
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if a.isLoggedIn() {
		t.Fatalf("identity not cleared")
	}
}
