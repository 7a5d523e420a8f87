package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/juliakramer/slipway/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Date formats a date the way slipway prints all dates.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// DatePtr formats an optional date, dimming the placeholder when unset.
func DatePtr(t *time.Time) string {
	if t == nil {
		return StyleDim.Render("--")
	}
	return Date(*t)
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectNotStarted:
		return StyleBlue.Render("○ Not started")
	case domain.ProjectInProgress:
		return StyleGreen.Render("● In progress")
	case domain.ProjectPaused:
		return StyleYellow.Render("◌ Paused")
	case domain.ProjectDone:
		return StyleDim.Render("✔ Done")
	case domain.ProjectArchived:
		return StyleDim.Render("✖ Archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// WorkerStatusPill returns a colored indicator for a role's worker status.
func WorkerStatusPill(status domain.WorkerStatus) string {
	switch status {
	case domain.WorkerActive:
		return StyleGreen.Render("● active")
	case domain.WorkerWaiting:
		return StyleYellow.Render("◌ waiting")
	case domain.WorkerBlocked:
		return StyleRed.Render("▲ blocked")
	default:
		return StyleDim.Render(string(status))
	}
}

// RoleBadge returns a purple-styled role label.
func RoleBadge(role domain.Role) string {
	if role == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(role))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatFTE renders an FTE fraction compactly ("1", "0.5").
func FormatFTE(fte float64) string {
	s := fmt.Sprintf("%.2f", fte)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// FormatEffort renders remaining/total effort-days, e.g. "12.5 / 20d".
func FormatEffort(e domain.RoleEffort) string {
	return fmt.Sprintf("%s / %sd", FormatFTE(e.Remaining()), FormatFTE(e.TotalEffortDays))
}
