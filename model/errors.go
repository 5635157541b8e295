package model

import "fmt"

// MissingFieldError names the first required top-level field absent from a
// raw device export. Loading aborts; a previously loaded document stays
// active.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// ShapeError reports a key-number sequence that is not a sequence at all
// or is too short to hold the sentinel slot plus at least one key.
type ShapeError struct {
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("field %q has the wrong shape: %s", e.Field, e.Reason)
}

// DecodeError reports a snapshot marker whose payload could not be
// decoded. It aborts only the embedded path; callers fall back to loading
// the bytes as a plain export.
type DecodeError struct {
	Reason string
	Cause  error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("snapshot decode failed: %s: %v", e.Reason, e.Cause)
	}
	return "snapshot decode failed: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// ConsistencyWarning is advisory only: the document still loads and
// renders with the discrepancy reported. Slot is -1 for whole-array
// problems such as unequal parallel-array lengths.
type ConsistencyWarning struct {
	Slot    int     `json:"slot"`
	Field   string  `json:"field"`
	Want    float64 `json:"want,omitempty"`
	Got     float64 `json:"got,omitempty"`
	Message string  `json:"message"`
}
