package contract

import (
	"errors"
	"fmt"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	// ErrDuplicateOccupantIDs means two occupants in the same move-in
	// submission share an id number.
	ErrDuplicateOccupantIDs = errors.New("duplicate id numbers within the submitted occupants")
)

// MaxOccupantsError reports a move-in whose headcount would exceed the room's
// capacity. Max is the room limit; Rest is the occupant allowance after the
// main tenant.
type MaxOccupantsError struct {
	Max  int
	Rest int
}

func (e *MaxOccupantsError) Error() string {
	return fmt.Sprintf("maximum %d people per room (1 tenant + %d occupants)", e.Max, e.Rest)
}
