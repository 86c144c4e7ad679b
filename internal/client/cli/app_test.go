package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, password string) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte(password), nil }
}

func TestApp_Register(t *testing.T) {
	srv := newBackendStub(t)
	stubPassword(t, "secret1")

	var out bytes.Buffer
	app := NewApp(NewAPIClient(srv.URL), strings.NewReader("Alice\nu@x.com\n"), &out)

	require.NoError(t, app.Run(context.Background(), "register", ""))
	assert.Contains(t, out.String(), "Registered")
	assert.Contains(t, out.String(), "tok-register")
}

func TestApp_Login(t *testing.T) {
	srv := newBackendStub(t)
	stubPassword(t, "secret1")

	var out bytes.Buffer
	app := NewApp(NewAPIClient(srv.URL), strings.NewReader("u@x.com\n"), &out)

	require.NoError(t, app.Run(context.Background(), "login", ""))
	assert.Contains(t, out.String(), "Logged in as u@x.com")
}

func TestApp_WhoAmI_RequiresToken(t *testing.T) {
	srv := newBackendStub(t)

	var out bytes.Buffer
	app := NewApp(NewAPIClient(srv.URL), strings.NewReader(""), &out)

	err := app.Run(context.Background(), "whoami", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token")

	require.NoError(t, app.Run(context.Background(), "whoami", "tok-login"))
	assert.Contains(t, out.String(), "You are u@x.com")
}

func TestApp_UnknownCommand(t *testing.T) {
	app := NewApp(NewAPIClient("http://localhost:0"), strings.NewReader(""), &bytes.Buffer{})

	err := app.Run(context.Background(), "frobnicate", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
