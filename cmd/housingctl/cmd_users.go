package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/ports"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List application users (admin)",
	RunE:  runUsers,
}

var usersFlags struct {
	userType string
}

func init() {
	usersCmd.Flags().StringVar(&usersFlags.userType, "type", "", "filter by account type (resident, staff, admin)")
}

func runUsers(cmd *cobra.Command, _ []string) error {
	users, err := app.users.Fetch(cmd.Context(), ports.ListParams{})
	if err != nil {
		return err
	}
	w := table(cmd)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROOM\tTYPE\tCHECK-IN")
	for _, u := range users {
		if usersFlags.userType != "" && u.Type != usersFlags.userType {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Name, u.RoomNumber, u.Type, u.CheckInDate)
	}
	return w.Flush()
}
