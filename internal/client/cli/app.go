// Package cli implements authctl, a small terminal client for the auth
// backend: register an account, log in, and check a token.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

type App struct {
	api    *APIClient
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(api *APIClient, in io.Reader, out io.Writer) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out}
}

// Run dispatches a single command: register, login or whoami.
func (a *App) Run(ctx context.Context, command, token string) error {
	switch command {
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "whoami":
		return a.whoAmI(ctx, token)
	default:
		return fmt.Errorf("unknown command %q (expected register, login or whoami)", command)
	}
}

func (a *App) register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter display name (optional)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, token, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s (%s)\nToken: %s\n", user.Name, user.Email, token)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, token, err := a.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\nToken: %s\n", user.Name, user.Email, token)
	return nil
}

func (a *App) whoAmI(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("no token: pass -token or set AUTH_TOKEN")
	}

	user, err := a.api.WhoAmI(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "You are %s (%s), id %s\n", user.Name, user.Email, user.ID)
	return nil
}
