package datemath

import "errors"

const (
	// DateLayout is the wire format of task due dates.
	DateLayout = "2006-01-02"
	// DisplayLayout is how due dates are shown on cards.
	DisplayLayout = "02/01/2006"
)

var (
	ErrEmptyDate        = errors.New("date is empty")
	ErrUnrecognizedDate = errors.New("unrecognized date expression")
)
