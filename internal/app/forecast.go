package app

import (
	"time"

	"github.com/juliakramer/slipway/internal/workcal"
)

// ForecastRequest asks for a scheduling pass. With ProjectID set, only that
// project is scheduled (outside the chain); otherwise the whole active
// portfolio is chained in priority order.
type ForecastRequest struct {
	ProjectID string
	Now       *time.Time // override for tests; defaults to the current date
}

// RoleForecast is one role's computed window inside a project forecast.
type RoleForecast struct {
	Role      string
	StartDate time.Time
	EndDate   time.Time
}

// ProjectForecast is the per-project output contract: computed window,
// signed slip/reserve, and the chain/vacation context behind it.
type ProjectForecast struct {
	ProjectID         string
	ProjectName       string
	StartDate         time.Time
	EndDate           time.Time
	RequestedDelivery *time.Time

	// DiffWorkdays is positive when the project lands ahead of its requested
	// delivery date (reserve) and negative when it lands behind (slip). With
	// no requested date it counts working days from today to the end date.
	DiffWorkdays int

	BlockingProject        string
	LostWorkdaysToVacation int
	Roles                  []RoleForecast
	Warnings               []Warning
}

// ForecastResponse is a full scheduling pass keyed by project, plus the
// calendar configuration the pass ran under.
type ForecastResponse struct {
	GeneratedAt time.Time
	Calendar    workcal.Config
	Projects    []ProjectForecast
}

// ByProjectID indexes the response for consumers that join results back to
// their own records.
func (r *ForecastResponse) ByProjectID() map[string]ProjectForecast {
	out := make(map[string]ProjectForecast, len(r.Projects))
	for _, p := range r.Projects {
		out[p.ProjectID] = p
	}
	return out
}
