package domain

import "fmt"

// InsufficientDataError signals that a lookback window produced fewer points
// than a component's minimum. It is part of every analysis result contract,
// never a crash.
type InsufficientDataError struct {
	Subject  string // e.g. "daily sales", "stock samples"
	Required int
	Got      int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d %s, got %d", e.Required, e.Subject, e.Got)
}

// NotFoundError signals an unknown product id.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// InvalidInputError signals a caller-supplied value outside its valid range,
// e.g. a non-positive cost price.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
