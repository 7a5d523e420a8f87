package service

import (
	"fmt"

	"github.com/juliakramer/slipway/internal/domain"
	"github.com/juliakramer/slipway/internal/scheduler"
)

// joinAssignees resolves assignment rows against the roster and groups them
// by role for the scheduler. An assignment pointing at a person that no
// longer exists is rejected rather than silently dropped.
func joinAssignees(projectName string, assignments []*domain.Assignment, roster map[string]*domain.Person) (map[domain.Role][]scheduler.Assignee, error) {
	if len(assignments) == 0 {
		return nil, nil
	}
	assignees := make(map[domain.Role][]scheduler.Assignee)
	for _, a := range assignments {
		person, ok := roster[a.PersonID]
		if !ok {
			return nil, invalidInput(fmt.Errorf("assignment on %q references unknown person %s", projectName, a.PersonID))
		}
		assignees[a.Role] = append(assignees[a.Role], scheduler.Assignee{
			Person:        person,
			AllocationFTE: a.AllocationFTE,
		})
	}
	return assignees, nil
}
