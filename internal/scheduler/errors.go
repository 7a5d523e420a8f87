package scheduler

import (
	"fmt"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
)

// DivergenceError reports that the simulator's iteration ceiling was
// exceeded: effectively zero assigned capacity for so long that no finite
// completion date exists. Fatal for the affected project's schedule.
type DivergenceError struct {
	ProjectName     string
	Role            domain.Role
	Start           time.Time
	RemainingEffort float64
}

func (e *DivergenceError) Error() string {
	where := ""
	if e.ProjectName != "" {
		where = fmt.Sprintf(" for project %q", e.ProjectName)
	}
	if e.Role != "" {
		where += fmt.Sprintf(" role %q", e.Role)
	}
	return fmt.Sprintf("cannot estimate completion%s: %.1f effort-days still remaining after %d simulated days from %s",
		where, e.RemainingEffort, maxSimulationDays, e.Start.Format("2006-01-02"))
}
