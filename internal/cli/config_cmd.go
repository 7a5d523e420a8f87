package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/juliakramer/slipway/internal/cli/formatter"
	"github.com/juliakramer/slipway/internal/workcal"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the working-day calendar",
	}

	cmd.AddCommand(newConfigShowCmd(app), newConfigSetCmd(app), newConfigEditCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the calendar configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Settings.GetCalendarConfig(context.Background())
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Calendar"))
			if !cfg.IncludeHolidays {
				fmt.Println("Weekends only (no public holidays).")
				return nil
			}
			fmt.Printf("Weekends + public holidays for %s", strings.ToUpper(cfg.CountryCode))
			if cfg.SubdivisionCode != "" {
				fmt.Printf(" (%s)", strings.ToUpper(cfg.SubdivisionCode))
			}
			fmt.Println()
			return nil
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	var holidays bool
	var country, subdivision string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the calendar configuration non-interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := workcal.Config{
				IncludeHolidays: holidays,
				CountryCode:     strings.ToUpper(country),
				SubdivisionCode: strings.ToUpper(subdivision),
			}
			if err := app.Settings.SetCalendarConfig(context.Background(), cfg); err != nil {
				return err
			}
			fmt.Println("Calendar configuration saved.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&holidays, "holidays", false, "Skip public holidays in addition to weekends")
	cmd.Flags().StringVar(&country, "country", "", "Country code for the holiday calendar (e.g. US, DE)")
	cmd.Flags().StringVar(&subdivision, "subdivision", "", "Regional subdivision code, when applicable")

	return cmd
}

func newConfigEditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the calendar configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := app.Settings.GetCalendarConfig(ctx)
			if err != nil {
				return err
			}

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Skip public holidays?").
						Description("Weekends are always non-working days.").
						Value(&cfg.IncludeHolidays),
					huh.NewSelect[string]().
						Title("Country").
						Options(huh.NewOptions(workcal.Countries()...)...).
						Value(&cfg.CountryCode),
					huh.NewInput().
						Title("Subdivision (optional)").
						Placeholder("e.g. CA for California").
						Value(&cfg.SubdivisionCode),
				),
			).WithTheme(slipwayHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			if err := app.Settings.SetCalendarConfig(ctx, cfg); err != nil {
				return err
			}
			fmt.Println("Calendar configuration saved.")
			return nil
		},
	}
}
