package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
)

// LoginCommand opens a session against an API server and prints the token.
type LoginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email    string
	password string
}

// NewLoginCommand returns the login command.
func NewLoginCommand(rootCmd *RootCommand, app *kingpin.Application) *LoginCommand {
	c := &LoginCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("login", "Log into an API server and print the session token.")
	c.Cmd.Flag("email", "Email to log in with.").Required().StringVar(&c.email)
	c.Cmd.Flag("password", "Password, prompted for when not given.").StringVar(&c.password)

	return c
}

func (c LoginCommand) Name() string { return c.Cmd.FullCommand() }

func (c LoginCommand) Run(ctx context.Context) error {
	if !c.rootCmd.remote() {
		return fmt.Errorf("login needs --api-url")
	}

	password := c.password
	if password == "" {
		var err error
		password, err = c.promptPassword()
		if err != nil {
			return err
		}
	}

	client, err := newAPIClient(c.rootCmd)
	if err != nil {
		return err
	}

	session, user, err := client.Login(ctx, c.email, password)
	if err != nil {
		return fmt.Errorf("could not log in: %w", err)
	}

	fmt.Fprintf(c.rootCmd.Stdout, "Logged in as %s (%s)\n", user.Name, user.Email)
	fmt.Fprintf(c.rootCmd.Stdout, "  Token:   %s\n", session.Token)
	fmt.Fprintf(c.rootCmd.Stdout, "  Expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	fmt.Fprintf(c.rootCmd.Stdout, "\nExport it for later commands:\n  export TCOF_API_TOKEN=%s\n", session.Token)

	return nil
}

func (c LoginCommand) promptPassword() (string, error) {
	fmt.Fprintf(c.rootCmd.Stderr, "Password: ")

	line, err := bufio.NewReader(c.rootCmd.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password is required")
	}

	return password, nil
}
