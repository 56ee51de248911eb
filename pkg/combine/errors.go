package combine

import (
	"errors"
	"fmt"
)

// ErrDecisionCount is returned when a Decider answers with a decision vector
// whose length differs from the number of entries.
var ErrDecisionCount = errors.New("decider returned wrong number of decisions")

// ExtractError records the file whose extraction failed.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Path, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }
