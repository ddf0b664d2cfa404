package solver

import "fmt"

// ErrInvalidBudget indicates an ingredient budget outside [2, universeSize].
type ErrInvalidBudget struct {
	Budget       int
	UniverseSize int
}

func (e *ErrInvalidBudget) Error() string {
	return fmt.Sprintf("invalid ingredient budget %d: must be between 2 and %d", e.Budget, e.UniverseSize)
}

// ErrInvalidMaxCalls indicates a non-positive iteration cap.
type ErrInvalidMaxCalls struct {
	MaxCalls int
}

func (e *ErrInvalidMaxCalls) Error() string {
	return fmt.Sprintf("invalid iteration cap %d: must be positive", e.MaxCalls)
}
