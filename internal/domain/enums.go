package domain

// Role identifies a discipline on a project (e.g. "backend", "frontend",
// "design"). The set is open: any non-empty label is accepted, but the same
// label must be used consistently across efforts, assignments, and
// dependency edges.
type Role string

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPaused     ProjectStatus = "paused"
	ProjectDone       ProjectStatus = "done"
	ProjectArchived   ProjectStatus = "archived"
)

// Active reports whether the project participates in chain scheduling.
// Done and archived projects are excluded from the schedule entirely.
func (s ProjectStatus) Active() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectPaused:
		return true
	}
	return false
}

// ValidProjectStatuses is the canonical set of accepted status strings.
var ValidProjectStatuses = map[string]bool{
	"not_started": true, "in_progress": true, "paused": true,
	"done": true, "archived": true,
}

type DependencyKind string

const (
	DependencyBlocking DependencyKind = "blocking"
	DependencyWaiting  DependencyKind = "waiting"
	DependencyParallel DependencyKind = "parallel"
)

// Ordering reports whether the edge imposes a hand-off order between roles.
// Parallel edges are documentation only and never delay the successor.
func (k DependencyKind) Ordering() bool {
	return k == DependencyBlocking || k == DependencyWaiting
}

type WorkerStatus string

const (
	WorkerActive  WorkerStatus = "active"
	WorkerWaiting WorkerStatus = "waiting"
	WorkerBlocked WorkerStatus = "blocked"
)

// ValidWorkerStatuses is the canonical set of accepted worker status strings.
var ValidWorkerStatuses = map[string]bool{
	"active": true, "waiting": true, "blocked": true,
}
