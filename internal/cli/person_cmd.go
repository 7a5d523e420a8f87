package cli

import (
	"context"
	"fmt"

	"github.com/juliakramer/slipway/internal/cli/formatter"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/spf13/cobra"
)

func newPersonCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Manage the roster",
	}

	cmd.AddCommand(
		newPersonAddCmd(app),
		newPersonListCmd(app),
		newPersonInspectCmd(app),
		newPersonUpdateCmd(app),
		newPersonRemoveCmd(app),
		newVacationCmd(app),
	)

	return cmd
}

func newPersonAddCmd(app *App) *cobra.Command {
	var name, role string
	var fte float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person to the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Person{
				Name: name,
				Role: domain.Role(role),
				FTE:  fte,
			}
			if err := app.People.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Added %s (%s, %s FTE)\n", p.Name, p.Role, formatter.FormatFTE(p.FTE))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person name")
	cmd.Flags().StringVar(&role, "role", "", "Role label (e.g. backend, design)")
	cmd.Flags().Float64Var(&fte, "fte", 1.0, "Full-time-equivalent fraction")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newPersonListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := app.People.List(context.Background())
			if err != nil {
				return err
			}
			if len(people) == 0 {
				fmt.Println("No people on the roster.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatPersonList(people))
			return nil
		},
	}
}

func newPersonInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show a person's details and vacations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			personID, err := resolvePersonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.People.GetByID(ctx, personID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatPersonInspect(p))
			return nil
		},
	}
}

func newPersonUpdateCmd(app *App) *cobra.Command {
	var name, role string
	var fte float64

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			personID, err := resolvePersonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.People.GetByID(ctx, personID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("role") {
				p.Role = domain.Role(role)
			}
			if cmd.Flags().Changed("fte") {
				p.FTE = fte
			}

			if err := app.People.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Person name")
	cmd.Flags().StringVar(&role, "role", "", "Role label")
	cmd.Flags().Float64Var(&fte, "fte", 1.0, "Full-time-equivalent fraction")

	return cmd
}

func newPersonRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a person from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			personID, err := resolvePersonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.People.Delete(ctx, personID); err != nil {
				return err
			}
			fmt.Printf("Removed person %s\n", personID)
			return nil
		},
	}
}

func newVacationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vacation",
		Short: "Manage vacation ranges",
	}

	cmd.AddCommand(newVacationAddCmd(app), newVacationRemoveCmd(app))
	return cmd
}

func newVacationAddCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a vacation range for a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			personID, err := resolvePersonID(ctx, app, args[0])
			if err != nil {
				return err
			}
			start, err := parseDate(from)
			if err != nil {
				return err
			}
			end, err := parseDate(to)
			if err != nil {
				return err
			}

			v := &domain.VacationRange{PersonID: personID, Start: start, End: end}
			if err := app.People.AddVacation(ctx, v); err != nil {
				return err
			}
			fmt.Printf("Added vacation %s → %s\n", from, to)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day off (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day off (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newVacationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a vacation range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.People.RemoveVacation(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed vacation %s\n", args[0])
			return nil
		},
	}
}
