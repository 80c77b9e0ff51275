package identity

import "fmt"

type Kind string

const (
	KindTenant   Kind = "tenant"
	KindOccupant Kind = "occupant"
)

// Holder identifies the person already carrying an id number.
type Holder struct {
	FirstName string
	LastName  string
	Kind      Kind
}

func (h Holder) Describe() string {
	return fmt.Sprintf("%s %s (%s)", h.FirstName, h.LastName, h.Kind)
}

// Exclusions removes a record's own ids from the search, so that editing a
// tenant or occupant does not collide with itself.
type Exclusions struct {
	TenantID    uint
	OccupantIDs []uint
}
