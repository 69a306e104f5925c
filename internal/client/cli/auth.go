package cli

import (
	"context"
	"log"
	"os"

	"github.com/avolkov/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and creates a new account.
// A successful registration also starts a session: the server sets the
// cookie and the returned user is cached locally.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return err
	}

	log.Printf("Registered as %s", u.Email)
	return nil
}

// Login prompts for credentials and authenticates. On success the returned
// user is cached; the session cookie is handled by the API client.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return err
	}

	log.Printf("Logged in as %s", u.Email)
	return nil
}

// Logout ends the server session and wipes the locally cached state.
// The local wipe happens even if the server call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		log.Printf("Logout request failed: %s", err.Error())
	}

	if err := a.session.Clear(ctx); err != nil {
		return err
	}

	log.Println("Logged out")
	return nil
}
