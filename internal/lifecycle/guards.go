package lifecycle

import "fmt"

// GuardResult is the outcome of checking whether a transition may run.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts a refused guard into an ErrInvalidTransition.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, r.Reason)
}

func allowed() GuardResult {
	return GuardResult{Allowed: true}
}

func refused(action string, from State) GuardResult {
	return GuardResult{Reason: fmt.Sprintf("cannot %s while %s", action, from)}
}

// CanChange allows field edits only while drafting.
func CanChange(from State) GuardResult {
	if from != Drafting {
		return refused("change fields", from)
	}
	return allowed()
}

// CanConfirm allows review only of a draft.
func CanConfirm(from State) GuardResult {
	if from != Drafting {
		return refused("confirm", from)
	}
	return allowed()
}

// CanRevise allows going back to the form only from review.
func CanRevise(from State) GuardResult {
	if from != Confirming {
		return refused("revise", from)
	}
	return allowed()
}

// CanCommit allows saving only a reviewed hike.
func CanCommit(from State) GuardResult {
	if from != Confirming {
		return refused("commit", from)
	}
	return allowed()
}
