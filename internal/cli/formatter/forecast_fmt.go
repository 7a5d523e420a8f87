package formatter

import (
	"fmt"
	"strings"

	"github.com/juliakramer/slipway/internal/app"
)

// FormatForecastTable renders a full scheduling pass as a table, one row per
// project in chain order.
func FormatForecastTable(resp *app.ForecastResponse) string {
	var b strings.Builder

	b.WriteString(Header("Delivery forecast"))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Generated %s · calendar %s\n\n",
		Date(resp.GeneratedAt), calendarLabel(resp.Calendar.CountryCode, resp.Calendar.IncludeHolidays))))

	headers := []string{"PROJECT", "START", "END", "REQUESTED", "DIFF", "BLOCKED BY", "LOST"}
	rows := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		rows = append(rows, []string{
			Bold(p.ProjectName),
			Date(p.StartDate),
			Date(p.EndDate),
			DatePtr(p.RequestedDelivery),
			DiffIndicator(p.DiffWorkdays),
			blockingLabel(p.BlockingProject),
			lostLabel(p.LostWorkdaysToVacation),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	for _, p := range resp.Projects {
		for _, w := range p.Warnings {
			b.WriteString("\n" + StyleYellow.Render("⚠ "+p.ProjectName+": ") + w.Message)
		}
	}

	return b.String()
}

// FormatForecastDetail renders one project's forecast with its per-role
// windows.
func FormatForecastDetail(p app.ProjectForecast) string {
	var b strings.Builder

	b.WriteString(Header(p.ProjectName))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s → %s\n", Dim("Window:"), Date(p.StartDate), Date(p.EndDate)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Requested:"), DatePtr(p.RequestedDelivery)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Diff:"), DiffIndicator(p.DiffWorkdays)))
	if p.BlockingProject != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Blocked by:"), p.BlockingProject))
	}
	if p.LostWorkdaysToVacation > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Lost to vacation:"), StyleYellow.Render(fmt.Sprintf("%dd", p.LostWorkdaysToVacation))))
	}

	if len(p.Roles) > 0 {
		b.WriteString("\n")
		headers := []string{"ROLE", "START", "END"}
		rows := make([][]string, 0, len(p.Roles))
		for _, r := range p.Roles {
			rows = append(rows, []string{StylePurple.Render(r.Role), Date(r.StartDate), Date(r.EndDate)})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	for _, w := range p.Warnings {
		b.WriteString("\n" + StyleYellow.Render("⚠ ") + w.Message + "\n")
	}

	return b.String()
}

func calendarLabel(country string, holidays bool) string {
	if !holidays || country == "" {
		return "weekends only"
	}
	return "weekends + " + strings.ToUpper(country) + " holidays"
}

func blockingLabel(name string) string {
	if name == "" {
		return Dim("--")
	}
	return name
}

func lostLabel(days int) string {
	if days == 0 {
		return Dim("0")
	}
	return StyleYellow.Render(fmt.Sprintf("%dd", days))
}
