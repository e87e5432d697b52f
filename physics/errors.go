package physics

import (
	"errors"
	"fmt"
)

// ErrBodyDetached is returned for bodies that are not linked into the world they are used with
var ErrBodyDetached = errors.New("physics: body not attached to this world")

// InvalidMassError is returned when a dynamic body is created with non-positive mass
type InvalidMassError struct {
	Mass float32
}

func (e *InvalidMassError) Error() string {
	return fmt.Sprintf("physics: invalid mass %g for dynamic body", e.Mass)
}
