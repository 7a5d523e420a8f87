package cli

import (
	"context"
	"fmt"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/spf13/cobra"
)

func newAssignCmd(app *App) *cobra.Command {
	var person, project, role string
	var allocation float64

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign a person to a role on a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			personID, err := resolvePersonID(ctx, app, person)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, project)
			if err != nil {
				return err
			}

			a := &domain.Assignment{
				PersonID:      personID,
				ProjectID:     projectID,
				Role:          domain.Role(role),
				AllocationFTE: allocation,
			}
			if err := app.Assignments.Assign(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Assigned %s to %s as %s (%.2g FTE)\n", person, project, role, allocation)
			return nil
		},
	}

	cmd.Flags().StringVar(&person, "person", "", "Person name or ID")
	cmd.Flags().StringVar(&project, "project", "", "Project name or ID")
	cmd.Flags().StringVar(&role, "role", "", "Role label the assignment covers")
	cmd.Flags().Float64Var(&allocation, "fte", 1.0, "Allocation fraction for this assignment")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newUnassignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "unassign ID",
		Short: "Remove an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Assignments.Unassign(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed assignment %s\n", args[0])
			return nil
		},
	}
}
