package identity

import "fmt"

// DuplicateIDError reports an id number already claimed by an existing tenant
// or occupant. Holder carries the descriptor the presentation layer shows.
type DuplicateIDError struct {
	IDNumber string
	Holder   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("id number %q is already used by %s", e.IDNumber, e.Holder)
}
