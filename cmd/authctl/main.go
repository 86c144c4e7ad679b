package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kshitij230106/weather-dashboard-backend/internal/client/cli"
)

func main() {
	addr := flag.String("addr", "http://localhost:3001", "auth backend base URL")
	token := flag.String("token", os.Getenv("AUTH_TOKEN"), "bearer token for whoami")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		fmt.Fprintln(os.Stderr, "usage: authctl [-addr URL] [-token TOKEN] register|login|whoami")
		os.Exit(2)
	}

	app := cli.NewApp(cli.NewAPIClient(*addr), os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), command, *token); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
