package verification

import "service-freight-match/internal/domain"

// State is the per-kind verification state derived from an account's
// document history. Unlike domain.DocumentStatus it includes the
// no-submission case.
type State string

// List of verification states
const (
	StateNone     State = "NONE"
	StatePending  State = "PENDING"
	StateApproved State = "APPROVED"
	StateRejected State = "REJECTED"
)

// StateForKind reduces a document list to the current state of one kind.
// Documents are immutable once reviewed, so the state is a pure view over
// the append-only history: an approval is stable, a pending submission
// supersedes earlier rejections, and rejections stand until resubmission.
func StateForKind(docs []domain.VerificationDocument, kind domain.DocumentKind) State {
	state := StateNone
	for _, d := range docs {
		if d.Kind != kind {
			continue
		}
		switch d.Status {
		case domain.DocApproved:
			return StateApproved
		case domain.DocPending:
			state = StatePending
		case domain.DocRejected:
			if state == StateNone {
				state = StateRejected
			}
		}
	}
	return state
}

// CanSubmit reports whether a new submission is allowed from this state.
// NONE|REJECTED → PENDING; an open or approved submission blocks a new one.
func (s State) CanSubmit() bool {
	return s == StateNone || s == StateRejected
}
