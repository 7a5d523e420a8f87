package app

type WarningCode string

const (
	// WarnCyclicDependency marks a project whose role dependency graph could
	// not be fully resolved; its dates are the parallel-fallback best effort.
	WarnCyclicDependency WarningCode = "CYCLIC_DEPENDENCY"
)

// Warning is a non-fatal condition attached to a project's forecast so the
// caller can badge the result instead of hiding it.
type Warning struct {
	ProjectID   string
	ProjectName string
	Code        WarningCode
	Message     string
}

type ForecastErrorCode string

const (
	ErrInvalidInput ForecastErrorCode = "INVALID_INPUT"
	ErrDivergence   ForecastErrorCode = "SCHEDULING_DIVERGENCE"
	ErrNoCalendar   ForecastErrorCode = "INVALID_CALENDAR"
)

// ForecastError is the typed failure of a scheduling pass. Callers should
// render it as an explicit "unable to compute" state, never as a date.
type ForecastError struct {
	Code    ForecastErrorCode
	Message string
}

func (e *ForecastError) Error() string {
	return string(e.Code) + ": " + e.Message
}
