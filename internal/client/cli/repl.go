package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Edit(ctx context.Context) error
	Users(ctx context.Context) error
	Delete(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the AccountKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, context cancellation,
// or when the user types "exit" or "quit".
//
// Commands while not logged in: signup, login, help, exit.
// Commands while logged in: whoami, edit, users, delete, logout, help, exit.
//
// Any errors returned by command handlers are ignored here; handlers
// print their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		printlnFn(fmt.Sprintf("ak> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, edit, users, delete, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}
		case "signup":
			_ = a.SignUp(ctx)
		case "login":
			_ = a.Login(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "edit":
			_ = a.Edit(ctx)
		case "users":
			_ = a.Users(ctx)
		case "delete":
			_ = a.Delete(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			return
		default:
			printlnFn(fmt.Sprintf("Unknown command: %s (try 'help')", cmd))
		}
	}
}
