package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/session"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	state() session.State
	role() models.Role
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Invoices(ctx context.Context, filter string) error
	Upload(ctx context.Context) error
	Users(ctx context.Context) error
	All(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the portal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The set of accepted commands
// is the routing guard: commands outside the current state/role are
// reported as unknown. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
//	Logged out:   help, login, register, exit
//	Standard:     help, invoices [filter], logout, exit
//	Admin:        help, upload, users, all, logout, exit
//
// Errors returned by command handlers are rendered by the handlers
// themselves; the loop stays interactive after any failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprintf(w, "portal> %s > \n", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		loggedIn := a.state() == session.Authenticated
		admin := loggedIn && a.role() == models.RoleAdmin

		switch {
		case cmd == "exit" || cmd == "quit":
			return

		case cmd == "help":
			switch {
			case admin:
				fmt.Fprintln(w, "Available commands: upload, users, all, logout, exit")
			case loggedIn:
				fmt.Fprintln(w, "Available commands: invoices [filter], logout, exit")
			default:
				fmt.Fprintln(w, "Available commands: login, register, exit")
			}

		case cmd == "login" && !loggedIn:
			_ = a.Login(ctx)

		case cmd == "register" && !loggedIn:
			_ = a.Register(ctx)

		case (cmd == "i" || cmd == "invoices") && loggedIn && !admin:
			filter := ""
			if len(parts) > 1 {
				filter = strings.Join(parts[1:], " ")
			}
			_ = a.Invoices(ctx, filter)

		case cmd == "upload" && admin:
			_ = a.Upload(ctx)

		case cmd == "users" && admin:
			_ = a.Users(ctx)

		case cmd == "all" && admin:
			_ = a.All(ctx)

		case cmd == "logout" && loggedIn:
			_ = a.Logout(ctx)

		default:
			fmt.Fprintf(w, "Unknown command: %s (type 'help')\n", cmd)
		}
	}
}
