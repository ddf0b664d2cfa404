package cocktails

import (
	"errors"
	"fmt"

	"github.com/urschrei/cocktails/solver"
)

var (
	// ErrInvalidConfig is returned when the budget or iteration cap is out
	// of range. The specific cause can be accessed via errors.As with
	// *solver.ErrInvalidBudget or *solver.ErrInvalidMaxCalls.
	ErrInvalidConfig = errors.New("invalid configuration")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var eb *solver.ErrInvalidBudget
	if errors.As(err, &eb) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var ec *solver.ErrInvalidMaxCalls
	if errors.As(err, &ec) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return err
}
