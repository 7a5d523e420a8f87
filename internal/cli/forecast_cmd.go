package cli

import (
	"context"
	"fmt"

	"github.com/juliakramer/slipway/internal/app"
	"github.com/juliakramer/slipway/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newForecastCmd(cliApp *App) *cobra.Command {
	var project, today string

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Compute delivery dates for the active portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			req := app.ForecastRequest{}
			if today != "" {
				t, err := parseDate(today)
				if err != nil {
					return err
				}
				req.Now = &t
			}
			if project != "" {
				projectID, err := resolveProjectID(ctx, cliApp, project)
				if err != nil {
					return err
				}
				req.ProjectID = projectID
			}

			resp, err := cliApp.Forecast.Forecast(ctx, req)
			if err != nil {
				return err
			}
			if len(resp.Projects) == 0 {
				fmt.Println("Nothing to schedule.")
				return nil
			}

			if req.ProjectID != "" {
				fmt.Printf("%s\n", formatter.FormatForecastDetail(resp.Projects[0]))
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatForecastTable(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "Forecast a single project outside the chain")
	cmd.Flags().StringVar(&today, "today", "", "Override today's date (YYYY-MM-DD)")

	return cmd
}
