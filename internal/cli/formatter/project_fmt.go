package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/juliakramer/slipway/internal/domain"
)

// FormatProjectList renders the portfolio as a table, one row per project.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "PRI", "NAME", "STATUS", "START", "REQUESTED", "ROLES"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			fmt.Sprintf("%d", p.Priority),
			Bold(p.Name),
			StatusPill(p.Status),
			DatePtr(p.ExplicitStart),
			DatePtr(p.RequestedDelivery),
			formatRoleSummary(p),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectInspect renders one project with efforts, dependency edges,
// and worker statuses.
func FormatProjectInspect(p *domain.Project, assignments []*domain.Assignment, people map[string]*domain.Person) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), p.ID))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Priority:"), p.Priority))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Explicit start:"), DatePtr(p.ExplicitStart)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Requested delivery:"), DatePtr(p.RequestedDelivery)))

	if len(p.Efforts) > 0 {
		b.WriteString("\n" + Header("Effort") + "\n")
		headers := []string{"ROLE", "TOTAL", "DONE", "REMAINING", "STAFFED"}
		rows := make([][]string, 0, len(p.Efforts))
		for _, role := range sortedRoles(p.Efforts) {
			e := p.Efforts[role]
			rows = append(rows, []string{
				RoleBadge(role),
				fmt.Sprintf("%sd", FormatFTE(e.TotalEffortDays)),
				fmt.Sprintf("%.0f%%", e.PercentDone),
				fmt.Sprintf("%sd", FormatFTE(e.Remaining())),
				formatStaffing(role, assignments, people),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if p.Graph != nil && len(p.Graph.Edges) > 0 {
		b.WriteString("\n" + Header("Dependencies") + "\n")
		for _, e := range p.Graph.Edges {
			b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
				RoleBadge(e.From), Dim("→"), RoleBadge(e.To), Dim("("+string(e.Kind)+")")))
		}
	}

	if p.Graph != nil && len(p.Graph.Statuses) > 0 {
		b.WriteString("\n" + Header("Worker status") + "\n")
		for _, role := range sortedStatusRoles(p.Graph.Statuses) {
			b.WriteString(fmt.Sprintf("  %s  %s\n", RoleBadge(role), WorkerStatusPill(p.Graph.Statuses[role])))
		}
	}

	return b.String()
}

func formatRoleSummary(p *domain.Project) string {
	if len(p.Efforts) == 0 {
		return Dim("--")
	}
	parts := make([]string, 0, len(p.Efforts))
	for _, role := range sortedRoles(p.Efforts) {
		parts = append(parts, string(role))
	}
	return strings.Join(parts, ", ")
}

func formatStaffing(role domain.Role, assignments []*domain.Assignment, people map[string]*domain.Person) string {
	var names []string
	for _, a := range assignments {
		if a.Role != role {
			continue
		}
		if p, ok := people[a.PersonID]; ok {
			names = append(names, fmt.Sprintf("%s (%s)", p.Name, FormatFTE(a.AllocationFTE)))
		}
	}
	if len(names) == 0 {
		return Dim("unstaffed")
	}
	return strings.Join(names, ", ")
}

func sortedRoles(efforts map[domain.Role]domain.RoleEffort) []domain.Role {
	roles := make([]domain.Role, 0, len(efforts))
	for r := range efforts {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

func sortedStatusRoles(statuses map[domain.Role]domain.WorkerStatus) []domain.Role {
	roles := make([]domain.Role, 0, len(statuses))
	for r := range statuses {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
