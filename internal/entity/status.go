package entity

import (
	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

type Status string

const (
	Pending    Status = "pending"
	Processing Status = "processing"
	Completed  Status = "completed"
	Failed     Status = "failed"
)

// transitions lists the allowed next states for every non-terminal status.
// completed and failed are terminal and have no entry.
var transitions = map[Status][]Status{
	Pending:    {Processing},
	Processing: {Completed, Failed},
}

func (s Status) Valid() bool {
	switch s {
	case Pending, Processing, Completed, Failed:
		return true
	}

	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == Completed || s == Failed
}

// Transition validates a requested status change and returns the accepted new
// status. It performs no I/O; persisting the result is the caller's concern.
func Transition(from, to Status) (Status, error) {
	for _, next := range transitions[from] {
		if next == to {
			return to, nil
		}
	}

	return "", &errs.InvalidTransitionError{From: string(from), To: string(to)}
}
