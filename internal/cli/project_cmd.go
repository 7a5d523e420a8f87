package cli

import (
	"context"
	"fmt"

	"github.com/juliakramer/slipway/internal/cli/formatter"
	"github.com/juliakramer/slipway/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectUpdateCmd(app),
		newProjectRemoveCmd(app),
		newEffortCmd(app),
		newDepCmd(app),
		newRoleStatusCmd(app),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, start, due string
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Project{
				Name:     name,
				Priority: priority,
				Status:   domain.ProjectNotStarted,
			}

			if start != "" {
				startDate, err := parseDate(start)
				if err != nil {
					return err
				}
				p.ExplicitStart = &startDate
			}
			if due != "" {
				dueDate, err := parseDate(due)
				if err != nil {
					return err
				}
				p.RequestedDelivery = &dueDate
			}

			if err := app.Projects.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created project %s (priority %d)\n", p.Name, p.Priority)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().IntVar(&priority, "priority", 0, "Chain priority (lower schedules first)")
	cmd.Flags().StringVar(&start, "start", "", "Explicit start date (YYYY-MM-DD); pins the project outside the chain")
	cmd.Flags().StringVar(&due, "due", "", "Requested delivery date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := app.Projects.List(context.Background(), all)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(projects))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include done and archived projects")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect NAME",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			assignments, _ := app.Assignments.ListByProject(ctx, projectID)
			people := make(map[string]*domain.Person)
			if roster, err := app.People.List(ctx); err == nil {
				for _, person := range roster {
					people[person.ID] = person
				}
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(p, assignments, people))
			return nil
		},
	}
}

func newProjectUpdateCmd(app *App) *cobra.Command {
	var name, start, due, status string
	var priority int

	cmd := &cobra.Command{
		Use:   "update NAME",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("priority") {
				p.Priority = priority
			}
			if cmd.Flags().Changed("start") {
				if start == "" {
					p.ExplicitStart = nil
				} else {
					startDate, err := parseDate(start)
					if err != nil {
						return err
					}
					p.ExplicitStart = &startDate
				}
			}
			if cmd.Flags().Changed("due") {
				if due == "" {
					p.RequestedDelivery = nil
				} else {
					dueDate, err := parseDate(due)
					if err != nil {
						return err
					}
					p.RequestedDelivery = &dueDate
				}
			}
			if cmd.Flags().Changed("status") {
				p.Status = domain.ProjectStatus(status)
			}

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated project %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().IntVar(&priority, "priority", 0, "Chain priority (lower schedules first)")
	cmd.Flags().StringVar(&start, "start", "", "Explicit start date (YYYY-MM-DD); empty clears it")
	cmd.Flags().StringVar(&due, "due", "", "Requested delivery date (YYYY-MM-DD); empty clears it")
	cmd.Flags().Var(newEnumValue(&status, "",
		"not_started", "in_progress", "paused", "done", "archived"),
		"status", "Status (not_started|in_progress|paused|done|archived)")

	return cmd
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Delete(ctx, projectID); err != nil {
				return err
			}
			fmt.Printf("Removed project %s\n", projectID)
			return nil
		},
	}
}

func newEffortCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "effort",
		Short: "Manage per-role effort estimates",
	}

	cmd.AddCommand(newEffortSetCmd(app), newEffortRemoveCmd(app))
	return cmd
}

func newEffortSetCmd(app *App) *cobra.Command {
	var role string
	var days, done float64

	cmd := &cobra.Command{
		Use:   "set NAME",
		Short: "Set a role's effort estimate on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if p.Efforts == nil {
				p.Efforts = make(map[domain.Role]domain.RoleEffort)
			}
			effort := p.Efforts[domain.Role(role)]
			if cmd.Flags().Changed("days") {
				effort.TotalEffortDays = days
			}
			if cmd.Flags().Changed("done") {
				effort.PercentDone = done
			}
			p.Efforts[domain.Role(role)] = effort

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Set %s effort on %s: %s\n", role, p.Name, formatter.FormatEffort(effort))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role label")
	cmd.Flags().Float64Var(&days, "days", 0, "Total effort in effort-days")
	cmd.Flags().Float64Var(&done, "done", 0, "Percent already done (0-100)")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newEffortRemoveCmd(app *App) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a role's effort estimate from a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			delete(p.Efforts, domain.Role(role))
			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Removed %s effort from %s\n", role, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role label")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage role dependency edges",
	}

	cmd.AddCommand(newDepAddCmd(app), newDepRemoveCmd(app))
	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var from, to, kind string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a dependency edge between two roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if p.Graph == nil {
				p.Graph = &domain.RoleGraph{}
			}
			p.Graph.Edges = append(p.Graph.Edges, domain.DependencyEdge{
				From: domain.Role(from),
				To:   domain.Role(to),
				Kind: domain.DependencyKind(kind),
			})

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Added dependency %s → %s (%s) on %s\n", from, to, kind, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Role that must finish first")
	cmd.Flags().StringVar(&to, "to", "", "Role that starts afterwards")
	cmd.Flags().Var(newEnumValue(&kind, "blocking", "blocking", "waiting", "parallel"),
		"kind", "Edge kind (blocking|waiting|parallel)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a dependency edge between two roles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if p.Graph == nil {
				return fmt.Errorf("project %q has no dependency graph", p.Name)
			}
			kept := p.Graph.Edges[:0]
			removed := 0
			for _, e := range p.Graph.Edges {
				if e.From == domain.Role(from) && e.To == domain.Role(to) {
					removed++
					continue
				}
				kept = append(kept, e)
			}
			if removed == 0 {
				return fmt.Errorf("no dependency %s → %s on project %q", from, to, p.Name)
			}
			p.Graph.Edges = kept

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Removed dependency %s → %s from %s\n", from, to, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Role that must finish first")
	cmd.Flags().StringVar(&to, "to", "", "Role that starts afterwards")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newRoleStatusCmd(app *App) *cobra.Command {
	var role, status string

	cmd := &cobra.Command{
		Use:   "role-status NAME",
		Short: "Set a role's worker status on a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			if p.Graph == nil {
				p.Graph = &domain.RoleGraph{}
			}
			if p.Graph.Statuses == nil {
				p.Graph.Statuses = make(map[domain.Role]domain.WorkerStatus)
			}
			p.Graph.Statuses[domain.Role(role)] = domain.WorkerStatus(status)

			if err := app.Projects.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Set %s worker status to %s on %s\n", role, status, p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Role label")
	cmd.Flags().Var(newEnumValue(&status, "", "active", "waiting", "blocked"),
		"status", "Worker status (active|waiting|blocked)")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}
