package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tinylink/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	session() session.Session
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Shorten(ctx context.Context) error
	List(ctx context.Context) error
	Update(ctx context.Context, id string) error
	Watch(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Tinylink CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Every command navigates to a
// route, and the route's guard is resolved against the CURRENT session on
// every dispatch, so logging out revokes dashboard commands immediately.
// A guard redirect prints where the user was sent instead of executing.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - shorten        — create a short link
//	  - (l)ist         — show your links
//	  - update <id>    — change a link's URL or alias
//	  - watch          — stream list refreshes until Enter is pressed
//	  - whoami         — show the current identity
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers notify
// the user themselves. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tl> %s ", statusFn()))
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
			if a.session().Authenticated {
				printlnFn("Available commands: shorten, (l)ist, update <id>, watch, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		route, ok := commandRoutes[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}

		if out := guardFor(route).Resolve(a.session()); !out.Allowed {
			printlnFn(fmt.Sprintf("redirected to %s", out.RedirectTo))
			continue
		}

		switch cmd {
		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "shorten":
			_ = a.Shorten(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "update":
			if len(args) == 0 {
				printlnFn("Usage: update <id>")
				continue
			}
			_ = a.Update(ctx, args[0])

		case "watch":
			_ = a.Watch(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)
		}
	}
}
