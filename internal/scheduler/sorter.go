package scheduler

import (
	"sort"

	"github.com/juliakramer/slipway/internal/domain"
)

// StatusRank returns the chaining precedence of a project status
// (lower = scheduled earlier among equal priorities).
func StatusRank(s domain.ProjectStatus) int {
	switch s {
	case domain.ProjectInProgress:
		return 0
	case domain.ProjectNotStarted:
		return 1
	case domain.ProjectPaused:
		return 2
	default:
		return 3
	}
}

// ChainOrder sorts projects into the deterministic chaining order:
// 1. Priority: ascending (lower number first)
// 2. Status: in_progress < not_started < paused
// 3. Creation time: ascending
// 4. Name, then ID: lexical ascending (tie-breakers)
func ChainOrder(projects []ProjectInput) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]

		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}

		rankA, rankB := StatusRank(a.Status), StatusRank(b.Status)
		if rankA != rankB {
			return rankA < rankB
		}

		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}

		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
}
