package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Manage maintenance requests",
}

var maintenanceListFlags struct {
	status string
}

var maintenanceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List maintenance requests",
	RunE:  runMaintenanceList,
}

var maintenanceCreateFlags struct {
	room        string
	reqType     string
	description string
	priority    string
}

var maintenanceCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit a new maintenance request",
	RunE:  runMaintenanceCreate,
}

var maintenanceStatusFlags struct {
	note string
}

var maintenanceStatusCmd = &cobra.Command{
	Use:   "set-status <id> <pending|in_progress|completed|cancelled>",
	Short: "Transition a maintenance request (staff)",
	Args:  cobra.ExactArgs(2),
	RunE:  runMaintenanceStatus,
}

func init() {
	maintenanceListCmd.Flags().StringVar(&maintenanceListFlags.status, "status", "", "filter by status")

	f := maintenanceCreateCmd.Flags()
	f.StringVar(&maintenanceCreateFlags.room, "room", "", "room number (required)")
	f.StringVar(&maintenanceCreateFlags.reqType, "type", "", "request type, e.g. plumbing (required)")
	f.StringVar(&maintenanceCreateFlags.description, "description", "", "problem description (required)")
	f.StringVar(&maintenanceCreateFlags.priority, "priority", "medium", "low, medium, high or urgent")
	_ = maintenanceCreateCmd.MarkFlagRequired("room")
	_ = maintenanceCreateCmd.MarkFlagRequired("type")
	_ = maintenanceCreateCmd.MarkFlagRequired("description")

	maintenanceStatusCmd.Flags().StringVar(&maintenanceStatusFlags.note, "note", "", "note attached to the transition")

	maintenanceCmd.AddCommand(maintenanceListCmd, maintenanceCreateCmd, maintenanceStatusCmd)
}

func runMaintenanceList(cmd *cobra.Command, _ []string) error {
	items, err := app.maintenance.Fetch(cmd.Context(), ports.ListParams{Status: maintenanceListFlags.status})
	if err != nil {
		return err
	}
	w := table(cmd)
	fmt.Fprintln(w, "ID\tROOM\tTYPE\tPRIORITY\tSTATUS\tDESCRIPTION")
	for _, m := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", m.ID, m.RoomNumber, m.Type, m.Priority, m.Status, m.Description)
	}
	return w.Flush()
}

func runMaintenanceCreate(cmd *cobra.Command, _ []string) error {
	created, err := app.maintenance.Create(cmd.Context(), ports.CreateMaintenanceInput{
		RoomNumber:  maintenanceCreateFlags.room,
		Type:        maintenanceCreateFlags.reqType,
		Description: maintenanceCreateFlags.description,
		Priority:    maintenanceCreateFlags.priority,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created request %s (%s, %s)\n", created.ID, created.Type, created.Priority)
	return nil
}

func runMaintenanceStatus(cmd *cobra.Command, args []string) error {
	updated, err := app.maintenance.UpdateStatus(cmd.Context(), args[0], domain.MaintenanceStatus(args[1]), maintenanceStatusFlags.note)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Request %s is now %s\n", updated.ID, updated.Status)
	return nil
}
