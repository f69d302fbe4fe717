package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/session"
	"github.com/stretchr/testify/assert"
)

// fakeExec records which handlers the REPL dispatched to.
type fakeExec struct {
	st         session.State
	rl         models.Role
	logins     int
	registers  int
	invoices   int
	lastFilter string
	uploads    int
	users      int
	alls       int
	logouts    int
}

func (f *fakeExec) state() session.State { return f.st }
func (f *fakeExec) role() models.Role    { return f.rl }

func (f *fakeExec) Login(ctx context.Context) error    { f.logins++; return nil }
func (f *fakeExec) Register(ctx context.Context) error { f.registers++; return nil }
func (f *fakeExec) Invoices(ctx context.Context, filter string) error {
	f.invoices++
	f.lastFilter = filter
	return nil
}
func (f *fakeExec) Upload(ctx context.Context) error { f.uploads++; return nil }
func (f *fakeExec) Users(ctx context.Context) error  { f.users++; return nil }
func (f *fakeExec) All(ctx context.Context) error    { f.alls++; return nil }
func (f *fakeExec) Logout(ctx context.Context) error { f.logouts++; return nil }

func runScript(t *testing.T, f *fakeExec, script string) string {
	t.Helper()
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "test" }, scanner, &out)
	return out.String()
}

func TestREPL_GuestCommands(t *testing.T) {
	f := &fakeExec{st: session.Unauthenticated}
	out := runScript(t, f, "help\nlogin\nregister\nexit\n")

	assert.Equal(t, 1, f.logins)
	assert.Equal(t, 1, f.registers)
	assert.Contains(t, out, "login, register, exit")
}

func TestREPL_GuestCannotReachProtectedCommands(t *testing.T) {
	f := &fakeExec{st: session.Unauthenticated}
	out := runScript(t, f, "invoices\nupload\nusers\nall\nlogout\nexit\n")

	assert.Zero(t, f.invoices)
	assert.Zero(t, f.uploads)
	assert.Zero(t, f.users)
	assert.Zero(t, f.alls)
	assert.Zero(t, f.logouts)
	assert.Contains(t, out, "Unknown command: upload")
}

func TestREPL_StandardUserCommands(t *testing.T) {
	f := &fakeExec{st: session.Authenticated, rl: models.RoleStandard}
	out := runScript(t, f, "invoices\ninvoices enero\nlogout\nexit\n")

	assert.Equal(t, 2, f.invoices)
	assert.Equal(t, "enero", f.lastFilter)
	assert.Equal(t, 1, f.logouts)
	assert.NotContains(t, out, "Unknown command: invoices")
}

func TestREPL_StandardUserCannotReachAdminCommands(t *testing.T) {
	f := &fakeExec{st: session.Authenticated, rl: models.RoleStandard}
	out := runScript(t, f, "upload\nusers\nall\nexit\n")

	assert.Zero(t, f.uploads)
	assert.Zero(t, f.users)
	assert.Zero(t, f.alls)
	assert.Contains(t, out, "Unknown command: upload")
}

func TestREPL_AdminCommands(t *testing.T) {
	f := &fakeExec{st: session.Authenticated, rl: models.RoleAdmin}
	runScript(t, f, "upload\nusers\nall\nlogout\nexit\n")

	assert.Equal(t, 1, f.uploads)
	assert.Equal(t, 1, f.users)
	assert.Equal(t, 1, f.alls)
	assert.Equal(t, 1, f.logouts)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{st: session.Unauthenticated}
	runScript(t, f, "") // no input at all

	assert.Zero(t, f.logins)
}

func TestREPL_IgnoresBlankLines(t *testing.T) {
	f := &fakeExec{st: session.Unauthenticated}
	out := runScript(t, f, "\n\nexit\n")

	assert.NotContains(t, out, "Unknown command")
}
