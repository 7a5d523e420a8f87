package domain

import (
	"fmt"
	"time"
)

// Assignment links a person to a project under a given role, carrying the
// fraction of that person's time allocated to the project. The allocation
// may differ from the person's general FTE.
type Assignment struct {
	ID            string
	PersonID      string
	ProjectID     string
	Role          Role
	AllocationFTE float64
	CreatedAt     time.Time
}

// Validate checks referential fields and the allocation fraction.
func (a *Assignment) Validate() error {
	if a.PersonID == "" {
		return fmt.Errorf("assignment requires a person")
	}
	if a.ProjectID == "" {
		return fmt.Errorf("assignment requires a project")
	}
	if a.Role == "" {
		return fmt.Errorf("assignment requires a role")
	}
	if a.AllocationFTE <= 0 {
		return fmt.Errorf("assignment has non-positive allocation %.2f", a.AllocationFTE)
	}
	return nil
}
