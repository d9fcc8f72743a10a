package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tinylink/internal/client/api"
)

// test seams for interactive input
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Login prompts for credentials, exchanges them for a session token, and
// switches the session store to the authenticated state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Please enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	tok, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.sink.Error(api.Message(err))
		return err
	}

	if err := a.store.Login(ctx, tok); err != nil {
		a.sink.Error("login failed, please try again")
		return err
	}

	a.sink.Success("Welcome back!")
	return nil
}

// Register prompts for account details and creates a new account. The server
// issues a session token on success, so registration logs the user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Please choose a username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Please enter your email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	tok, err := a.client.Register(ctx, username, email, password)
	if err != nil {
		a.sink.Error(api.Message(err))
		return err
	}

	if err := a.store.Login(ctx, tok); err != nil {
		a.sink.Error("registration succeeded but login failed, please log in")
		return err
	}

	a.sink.Success("Registration Successful!")
	return nil
}

// Logout clears the session and its persisted token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		a.sink.Error("could not fully clear the stored session")
		return err
	}
	a.sink.Info("Logged out.")
	return nil
}

// WhoAmI prints the identity of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.store.Current()
	printlnFn(fmt.Sprintf("Logged in as %s <%s>", s.Identity.Username, s.Identity.Email))
	return nil
}
