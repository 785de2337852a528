package order

import (
	"fmt"
	"strings"

	"spraying/internal/pkg/errs"
)

// Status represents the lifecycle state of a spraying order.
//
// Modeled transitions:
//
//	Pending ──> Confirmed ··> Assigned ──> InProgress ──> SprayCompleted ··> Completed
//	   ·            ·            ·
//	   └············┴············┴··> Cancelled
//
// Solid edges are driven by Order.ChangeStatus. Dotted edges exist in the
// business process (staffing save, payment completion, cancellation) but
// their triggers are not defined yet; they are listed by UnmodeledEdges and
// rejected like any other unlisted edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a farmer's request.
	Pending

	// Confirmed means a receptionist accepted the request.
	Confirmed

	// Assigned means the order is staffed with sprayers.
	Assigned

	// InProgress means the primary sprayer started spraying.
	InProgress

	// SprayCompleted means spraying is done and payment is due.
	SprayCompleted

	// Completed is terminal: paid and closed.
	Completed

	// Cancelled is terminal.
	Cancelled
)

// Edge is a directed pair of statuses.
type Edge struct {
	From Status
	To   Status
}

// String renders "FROM->TO".
func (e Edge) String() string {
	return e.From.String() + "->" + e.To.String()
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Assigned:       "ASSIGNED",
		InProgress:     "IN_PROGRESS",
		SprayCompleted: "SPRAY_COMPLETED",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
	}
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Assigned, InProgress, SprayCompleted, Completed, Cancelled}
}

// ModeledEdges returns the transitions ChangeStatus accepts.
func ModeledEdges() []Edge {
	return []Edge{
		{From: Pending, To: Confirmed},
		{From: Assigned, To: InProgress},
		{From: InProgress, To: SprayCompleted},
	}
}

// UnmodeledEdges returns transitions known to exist whose trigger is undecided.
func UnmodeledEdges() []Edge {
	return []Edge{
		{From: Confirmed, To: Assigned},
		{From: SprayCompleted, To: Completed},
		{From: Pending, To: Cancelled},
		{From: Confirmed, To: Cancelled},
		{From: Assigned, To: Cancelled},
	}
}

// ParseStatus accepts the wire names, case-insensitively.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for _, st := range Statuses() {
		if st.String() == needle {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects values outside Pending..Cancelled.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, e.g. "SPRAY_COMPLETED".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions can leave s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateTransition returns a TransitionIsInvalidError unless s -> target
// is one of ModeledEdges.
func (s Status) ValidateTransition(target Status) error {
	for _, e := range ModeledEdges() {
		if e.From == s && e.To == target {
			return nil
		}
	}

	cause := fmt.Errorf("%s has no modeled transition to %s", s, target)
	for _, e := range UnmodeledEdges() {
		if e.From == s && e.To == target {
			cause = fmt.Errorf("%s is not modeled yet", e)
			break
		}
	}
	return errs.NewTransitionIsInvalidErrorWithCause(s.String(), target.String(), cause)
}
