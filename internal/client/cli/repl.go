package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Users(ctx context.Context) error
	RemoveUser(ctx context.Context, id string) error
	CartAdd(ctx context.Context, product string, qty int) error
	CartShow(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handler errors are ignored here; handlers report their own errors.
// This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, update, users, rmuser, cart, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "users":
			_ = a.Users(ctx)

		case "rmuser":
			if len(args) == 0 {
				printlnFn("Usage: rmuser <id>")
				continue
			}
			_ = a.RemoveUser(ctx, args[0])

		case "cart":
			switch {
			case len(args) == 0 || args[0] == "show":
				_ = a.CartShow(ctx)
			case args[0] == "add":
				if len(args) < 2 {
					printlnFn("Usage: cart add <product> [qty]")
					continue
				}
				qty := 1
				if len(args) > 2 {
					n, err := strconv.Atoi(args[2])
					if err != nil || n < 1 {
						printlnFn("Usage: cart add <product> [qty]")
						continue
					}
					qty = n
				}
				_ = a.CartAdd(ctx, args[1], qty)
			default:
				printlnFn("Usage: cart [show] | cart add <product> [qty]")
			}

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
