package formatter

import (
	"fmt"
	"strings"

	"github.com/juliakramer/slipway/internal/domain"
)

// FormatPersonList renders the roster as a table.
func FormatPersonList(people []*domain.Person) string {
	headers := []string{"ID", "NAME", "ROLE", "FTE", "VACATIONS"}
	rows := make([][]string, 0, len(people))
	for _, p := range people {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			RoleBadge(p.Role),
			FormatFTE(p.FTE),
			formatVacationCount(len(p.Vacations)),
		})
	}
	return RenderTable(headers, rows)
}

// FormatPersonInspect renders one person with their full vacation schedule.
func FormatPersonInspect(p *domain.Person) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), p.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Role:"), RoleBadge(p.Role)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("FTE:"), FormatFTE(p.FTE)))

	if len(p.Vacations) == 0 {
		b.WriteString(Dim("No vacations planned.") + "\n")
		return b.String()
	}

	b.WriteString("\n" + Header("Vacations") + "\n")
	headers := []string{"ID", "FROM", "TO"}
	rows := make([][]string, 0, len(p.Vacations))
	for _, v := range p.Vacations {
		rows = append(rows, []string{TruncID(v.ID), Date(v.Start), Date(v.End)})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

func formatVacationCount(n int) string {
	if n == 0 {
		return Dim("none")
	}
	return fmt.Sprintf("%d", n)
}
