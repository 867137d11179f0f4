package entity

import (
	"errors"
	"testing"

	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

func TestTransition(t *testing.T) {
	statuses := []Status{Pending, Processing, Completed, Failed}

	allowed := map[[2]Status]bool{
		{Pending, Processing}:  true,
		{Processing, Completed}: true,
		{Processing, Failed}:    true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			from, to := from, to

			t.Run(string(from)+"_to_"+string(to), func(t *testing.T) {
				next, err := Transition(from, to)

				if allowed[[2]Status{from, to}] {
					if err != nil {
						t.Fatalf("expected transition %s -> %s to be allowed, got %v", from, to, err)
					}
					if next != to {
						t.Fatalf("expected accepted status %s, got %s", to, next)
					}

					return
				}

				if err == nil {
					t.Fatalf("expected transition %s -> %s to be rejected", from, to)
				}

				var transitionErr *errs.InvalidTransitionError
				if !errors.As(err, &transitionErr) {
					t.Fatalf("expected InvalidTransitionError, got %T", err)
				}
				if transitionErr.From != string(from) || transitionErr.To != string(to) {
					t.Errorf("error carries %q -> %q, want %q -> %q",
						transitionErr.From, transitionErr.To, from, to)
				}
			})
		}
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	if _, err := Transition(Pending, Status("archived")); err == nil {
		t.Fatal("expected unknown target status to be rejected")
	}

	if _, err := Transition(Status("archived"), Processing); err == nil {
		t.Fatal("expected unknown source status to be rejected")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{Pending, Processing, Completed, Failed} {
		if !s.Valid() {
			t.Errorf("status %s should be valid", s)
		}
	}

	if Status("archived").Valid() {
		t.Error("unknown status should not be valid")
	}
}

func TestStatusTerminal(t *testing.T) {
	for s, want := range map[Status]bool{
		Pending:    false,
		Processing: false,
		Completed:  true,
		Failed:     true,
	} {
		if got := s.Terminal(); got != want {
			t.Errorf("Terminal(%s) = %v, want %v", s, got, want)
		}
	}
}
