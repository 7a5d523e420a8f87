package scheduler

import (
	"testing"
	"time"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/stretchr/testify/assert"
)

func chainInput(id, name string, prio int, status domain.ProjectStatus, created time.Time) ProjectInput {
	return ProjectInput{ID: id, Name: name, Priority: prio, Status: status, CreatedAt: created}
}

func orderedNames(projects []ProjectInput) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names
}

func TestChainOrder_PriorityFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []ProjectInput{
		chainInput("1", "low", 5, domain.ProjectInProgress, base),
		chainInput("2", "high", 1, domain.ProjectPaused, base),
		chainInput("3", "mid", 3, domain.ProjectNotStarted, base),
	}

	ChainOrder(projects)
	assert.Equal(t, []string{"high", "mid", "low"}, orderedNames(projects))
}

func TestChainOrder_StatusBreaksPriorityTies(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []ProjectInput{
		chainInput("1", "paused", 1, domain.ProjectPaused, base),
		chainInput("2", "fresh", 1, domain.ProjectNotStarted, base),
		chainInput("3", "running", 1, domain.ProjectInProgress, base),
	}

	ChainOrder(projects)
	assert.Equal(t, []string{"running", "fresh", "paused"}, orderedNames(projects))
}

func TestChainOrder_CreationTimeBreaksStatusTies(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []ProjectInput{
		chainInput("1", "younger", 1, domain.ProjectNotStarted, base.Add(time.Hour)),
		chainInput("2", "older", 1, domain.ProjectNotStarted, base),
	}

	ChainOrder(projects)
	assert.Equal(t, []string{"older", "younger"}, orderedNames(projects))
}

func TestChainOrder_NameThenIDAsFinalTieBreakers(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []ProjectInput{
		chainInput("b", "zeta", 1, domain.ProjectNotStarted, base),
		chainInput("a", "alpha", 1, domain.ProjectNotStarted, base),
		chainInput("2", "alpha", 1, domain.ProjectNotStarted, base),
	}

	ChainOrder(projects)
	assert.Equal(t, []string{"alpha", "alpha", "zeta"}, orderedNames(projects))
	assert.Equal(t, "2", projects[0].ID)
	assert.Equal(t, "a", projects[1].ID)
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, StatusRank(domain.ProjectInProgress), StatusRank(domain.ProjectNotStarted))
	assert.Less(t, StatusRank(domain.ProjectNotStarted), StatusRank(domain.ProjectPaused))
	assert.Less(t, StatusRank(domain.ProjectPaused), StatusRank(domain.ProjectDone))
}
