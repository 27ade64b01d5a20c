package json

import "fmt"

// InvalidNestingError signals that container starts and ends were not
// balanced: either End was called with no container open, or Finish found
// containers still open.
type InvalidNestingError struct {
	// Op is the writer operation that detected the imbalance.
	Op string

	// Depth is the nesting depth at the point of detection.
	Depth int
}

func (e *InvalidNestingError) Error() string {
	return fmt.Sprintf("json: invalid nesting, %s at depth %d", e.Op, e.Depth)
}

// ContractViolationError signals key/value-order misuse inside an object,
// such as writing a value while a key is expected or closing an object
// whose last key has no value.
type ContractViolationError struct {
	// Op is the writer operation that was misused.
	Op string

	// State describes what the writer was expecting instead.
	State string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("json: %s called while %s", e.Op, e.State)
}
