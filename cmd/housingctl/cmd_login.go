package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginFlags struct {
	username string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and hydrate local state",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session and all local state",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	RunE:  runWhoami,
}

func init() {
	f := loginCmd.Flags()
	f.StringVarP(&loginFlags.username, "username", "u", "", "account username (required)")
	f.StringVarP(&loginFlags.password, "password", "p", "", "account password (required)")

	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Pin to a reachable endpoint before authenticating; best-effort.
	app.client.Probe(ctx)

	user, err := app.session.Login(ctx, loginFlags.username, loginFlags.password)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Logged in as %s (%s)\n", user.Username, user.Type)
	if user.RoomNumber != "" {
		fmt.Fprintf(out, "Room:   %s\n", user.RoomNumber)
	}
	fmt.Fprintf(out, "Server: %s\n", app.client.BaseURL())
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app.session.Logout(cmd.Context())
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	user, err := app.session.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Username: %s\n", user.Username)
	fmt.Fprintf(out, "Name:     %s\n", user.Name)
	fmt.Fprintf(out, "Type:     %s\n", user.Type)
	if user.RoomNumber != "" {
		fmt.Fprintf(out, "Room:     %s\n", user.RoomNumber)
	}
	return nil
}
