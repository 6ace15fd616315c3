package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dkazarov/libkeeper/internal/client/client"
	"github.com/dkazarov/libkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account via the AuthService.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is securely wiped before returning. Any I/O or service error is returned
// unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, userName, password); err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			log.Printf("Username is already taken")
		case errors.Is(err, common.ErrorValidation):
			log.Printf("Username and password must not be empty")
		default:
			log.Printf("Registration unsuccessfull: %s", err.Error())
		}
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts the user for credentials and tries to authenticate against
// the server.
//
// On success it sets a.userName/a.userID and switches to ModeOnline. Failed
// attempts are reported to the user with a message matching the cause:
// unknown username, incorrect password, or an unreadable stored hash. If the
// server is unreachable the mode switches to ModeDisabled.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			log.Printf("User not found. You can register with the 'register' command")
		case errors.Is(err, common.ErrIncorrectPassword):
			log.Printf("Incorrect password")
		case errors.Is(err, common.ErrMalformedHash):
			log.Printf("Stored credentials are unreadable, contact the administrator")
		case errors.Is(err, client.ErrUnavailable):
			log.Printf("Server unavailable")
			a.setMode(ModeDisabled)
		default:
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successfull")
	a.userName = userName
	a.userID = userID
	a.setMode(ModeOnline)
	return nil
}

// Logout removes the in-memory user identity.
func (a *App) Logout(ctx context.Context) error {
	a.userName = ""
	a.userID = ""
	return nil
}

// WhoAmI prints the authenticated user, or a hint when not logged in.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s (%s)\n", a.userName, a.userID)
	return nil
}
