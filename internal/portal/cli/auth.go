package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aquiroz/invoiceportal/internal/common"
)

// Login prompts for credentials and authenticates through the session
// façade. Failures are printed and leave the session untouched.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	secret, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	account, err := a.session.Login(ctx, email, secret)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid credentials")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", account.Name)
	return nil
}

// Register prompts for the registration form, applies the client-side
// checks (secret length, confirmation match), and creates the account. The
// new account is authenticated immediately, as in the web portal.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	documentID, err := GetSimpleText(a.reader, "Enter document id (DNI/CIF)", a.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if len(secret) < 6 {
		fmt.Fprintln(a.out, "Password must be at least 6 characters")
		return fmt.Errorf("%w: password too short", common.ErrValidation)
	}
	if secret != confirm {
		fmt.Fprintln(a.out, "Passwords do not match")
		return fmt.Errorf("%w: password confirmation mismatch", common.ErrValidation)
	}

	account, err := a.session.Register(ctx, name, email, documentID, secret)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			fmt.Fprintln(a.out, "That email is already registered")
		} else {
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s\n", account.Name)
	return nil
}

// Logout ends the session and clears the persisted marker.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
