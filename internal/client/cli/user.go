package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avolkov/storefront/internal/client/client"
	"github.com/avolkov/storefront/internal/client/models"
	"github.com/avolkov/storefront/internal/common"
)

func printUser(u *models.User) {
	role := "customer"
	if u.IsAdmin {
		role = "admin"
	}
	fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, role)
}

// Whoami prints the locally cached user without touching the server.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not logged in")
		return nil
	}
	printUser(u)
	return nil
}

// Profile fetches the current profile from the server and refreshes the
// local cache with it.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.api.Profile(ctx)
	if err != nil {
		log.Printf("Failed to fetch profile: %s", err.Error())
		return err
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return err
	}

	printUser(u)
	return nil
}

// UpdateProfile prompts for new profile values. Empty answers keep the
// current value; an empty password leaves the credential unchanged.
func (a *App) UpdateProfile(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	upd := client.ProfileUpdate{Name: name, Email: email, Password: string(password)}

	u, err := a.api.UpdateProfile(ctx, upd)
	if err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return err
	}

	if err := a.session.SetUser(ctx, u); err != nil {
		return err
	}

	log.Println("Profile updated")
	printUser(u)
	return nil
}

// Users lists all accounts. Requires an admin session.
func (a *App) Users(ctx context.Context) error {
	users, err := a.api.ListUsers(ctx)
	if err != nil {
		log.Printf("Failed to list users: %s", err.Error())
		return err
	}

	for _, u := range users {
		printUser(u)
	}
	return nil
}

// RemoveUser deletes the account with the given id. Requires an admin session.
func (a *App) RemoveUser(ctx context.Context, id string) error {
	if err := a.api.DeleteUser(ctx, id); err != nil {
		log.Printf("Failed to remove user: %s", err.Error())
		return err
	}

	log.Println("User removed")
	return nil
}
