package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"spraying/internal/core/domain/model/kernel"
	"spraying/internal/core/domain/model/sprayer"
	"spraying/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAssignmentNotFound is returned by assignment operations that reference a sprayer
	// the order does not carry. It is always joined with an errs.ObjectNotFoundError.
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrSprayerAlreadyAssigned is returned when the same sprayer is added twice.
	ErrSprayerAlreadyAssigned = errors.New("sprayer is already assigned")

	// ErrPrimaryInvariantViolated reports an assignment list whose primary flags are not
	// "exactly one primary when non-empty".
	ErrPrimaryInvariantViolated = errors.New("assignments must have exactly one primary sprayer")
)

// Order represents a spraying job requested by a farmer. It is the aggregate root for
// the scheduled session, the staffing list and the closing feedback.
//
// Order follows these invariants:
//   - Area is positive and cost is non-negative
//   - The spray session ends after it starts on the same date
//   - Each sprayer appears at most once in the assignment list
//   - A non-empty assignment list has exactly one primary assignment
//   - Status only moves along ModeledEdges
type Order struct {
	id          kernel.UUID
	farmerID    kernel.UUID
	status      Status
	cropType    string
	area        float64
	cost        float64
	location    string
	coordinates kernel.Coordinates
	session     SpraySession
	autoAssign  bool

	// assignments keeps insertion order; primary promotion depends on it
	assignments []Assignment
	feedbacks   []Feedback
	payment     *Payment

	// version is the optimistic concurrency counter owned by the repository
	version int64

	isConstructed bool
}

// NewOrder creates a Pending order with no staff assigned.
//
// Example:
//
//	session, _ := order.ParseSchedule("2026-10-20 08:00-10:30")
//	coords, _ := kernel.NewCoordinates(13.75, 100.50)
//	o, err := order.NewOrder(kernel.NewUUID(), farmerID, "rice", 4.5, 1800, "North paddy", coords, session, true)
func NewOrder(
	id, farmerID kernel.UUID,
	cropType string,
	area, cost float64,
	location string,
	coordinates kernel.Coordinates,
	session SpraySession,
	autoAssign bool,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		location:      strings.TrimSpace(location),
		autoAssign:    autoAssign,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setFarmerID(farmerID),
		o.SetCropType(cropType),
		o.SetArea(area),
		o.SetCost(cost),
		o.setCoordinates(coordinates),
		o.SetSpraySession(session),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID          kernel.UUID
	FarmerID    kernel.UUID
	Status      Status
	CropType    string
	Area        float64
	Cost        float64
	Location    string
	Coordinates kernel.Coordinates
	Session     SpraySession
	AutoAssign  bool
	Assignments []Assignment
	Feedbacks   []Feedback
	Payment     *Payment
	Version     int64
}

// RestoreOrder rebuilds an order from storage, re-checking every invariant.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		location:      strings.TrimSpace(p.Location),
		autoAssign:    p.AutoAssign,
		feedbacks:     slices.Clone(p.Feedbacks),
		payment:       p.Payment,
		version:       p.Version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setFarmerID(p.FarmerID),
		o.setStatus(p.Status),
		o.SetCropType(p.CropType),
		o.SetArea(p.Area),
		o.SetCost(p.Cost),
		o.setCoordinates(p.Coordinates),
		o.SetSpraySession(p.Session),
		o.setAssignments(p.Assignments),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ValidateInvariants re-checks the cross-field rules a sequence of edits could break.
func (o *Order) ValidateInvariants() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return errors.Join(
		o.status.Validate(),
		o.session.Validate(),
		validateAssignments(o.assignments),
	)
}

// IsEqual compares orders by identity, not by content.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the unique identifier of the order.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// FarmerID returns the farmer who placed the order.
func (o *Order) FarmerID() kernel.UUID {
	return o.farmerID
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// CropType returns the crop to be sprayed.
func (o *Order) CropType() string {
	return o.cropType
}

// Area returns the field size.
func (o *Order) Area() float64 {
	return o.area
}

// Cost returns the quoted price.
func (o *Order) Cost() float64 {
	return o.cost
}

// Location returns the free-form field description.
func (o *Order) Location() string {
	return o.location
}

// Coordinates returns the field position.
func (o *Order) Coordinates() kernel.Coordinates {
	return o.coordinates
}

// SpraySession returns the scheduled window.
func (o *Order) SpraySession() SpraySession {
	return o.session
}

// AutoAssign reports whether staffing may be filled automatically.
func (o *Order) AutoAssign() bool {
	return o.autoAssign
}

// Assignments returns a copy of the staffing list in insertion order.
func (o *Order) Assignments() []Assignment {
	return slices.Clone(o.assignments)
}

// Feedbacks returns a copy of the ratings in submission order.
func (o *Order) Feedbacks() []Feedback {
	return slices.Clone(o.feedbacks)
}

// Payment returns nil until the payment flow attaches one.
func (o *Order) Payment() *Payment {
	return o.payment
}

// Version returns the optimistic concurrency counter. It grows by one on
// every persisted write.
func (o *Order) Version() int64 {
	return o.version
}

// PrimarySprayer returns the sprayer that drives status changes, if any.
func (o *Order) PrimarySprayer() (sprayer.Sprayer, bool) {
	for _, a := range o.assignments {
		if a.isPrimary {
			return a.sprayer, true
		}
	}
	return sprayer.Sprayer{}, false
}

// HasAssignment reports whether the sprayer is on the staffing list.
func (o *Order) HasAssignment(sprayerID kernel.UUID) bool {
	return o.indexOf(sprayerID) >= 0
}

// ChangeStatus moves the order along a modeled edge. Authorization is the
// caller's concern; see services.StateMachine.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.status.ValidateTransition(target); err != nil {
		return err
	}
	o.status = target
	return nil
}

// SetCropType trims the value and rejects an empty result.
func (o *Order) SetCropType(cropType string) error {
	cropType = strings.TrimSpace(cropType)
	if cropType == "" {
		return errs.NewValueIsRequiredError("cropType")
	}
	o.cropType = cropType
	return nil
}

// SetArea requires a finite value greater than zero.
func (o *Order) SetArea(area float64) error {
	if math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("area is invalid", fmt.Errorf("%v is not greater than 0", area))
	}
	o.area = area
	return nil
}

// SetCost requires a finite, non-negative value.
func (o *Order) SetCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) || cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost is invalid", fmt.Errorf("%v is negative", cost))
	}
	o.cost = cost
	return nil
}

// SetSpraySession replaces the scheduled window.
func (o *Order) SetSpraySession(session SpraySession) error {
	if err := session.Validate(); err != nil {
		return err
	}
	o.session = session
	return nil
}

// ToggleAutoAssign flips the flag and returns the new value.
func (o *Order) ToggleAutoAssign() bool {
	o.autoAssign = !o.autoAssign
	return o.autoAssign
}

// AddAssignment appends the sprayer. The first sprayer on an empty list
// becomes primary.
func (o *Order) AddAssignment(s sprayer.Sprayer) (Assignment, error) {
	if o.HasAssignment(s.ID()) {
		return Assignment{}, fmt.Errorf("%w: %w", ErrSprayerAlreadyAssigned,
			errs.NewValueIsInvalidErrorWithCause("sprayerID", fmt.Errorf("%s is already on order %s", s.ID(), o.id)))
	}

	a, err := NewAssignment(s, len(o.assignments) == 0)
	if err != nil {
		return Assignment{}, err
	}
	o.assignments = append(o.assignments, a)
	return a, nil
}

// RemoveAssignment drops the sprayer's assignment. When the primary is removed
// and others remain, the first remaining assignment is promoted.
func (o *Order) RemoveAssignment(sprayerID kernel.UUID) (Assignment, error) {
	i := o.indexOf(sprayerID)
	if i < 0 {
		return Assignment{}, o.assignmentNotFound(sprayerID)
	}

	removed := o.assignments[i]
	o.assignments = slices.Delete(o.assignments, i, i+1)
	if removed.isPrimary && len(o.assignments) > 0 {
		o.assignments[0].isPrimary = true
	}
	return removed, nil
}

// SetPrimarySprayer makes the matching assignment the only primary one.
func (o *Order) SetPrimarySprayer(sprayerID kernel.UUID) error {
	i := o.indexOf(sprayerID)
	if i < 0 {
		return o.assignmentNotFound(sprayerID)
	}
	for j := range o.assignments {
		o.assignments[j].isPrimary = j == i
	}
	return nil
}

// AddFeedback records a farmer's rating once the order is Completed.
func (o *Order) AddFeedback(f Feedback) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("feedback is invalid",
			fmt.Errorf("order is %s, feedback needs %s", o.status, Completed))
	}
	for _, existing := range o.feedbacks {
		if existing.id.IsEqual(f.id) {
			return nil
		}
	}
	o.feedbacks = append(o.feedbacks, f)
	return nil
}

// Clone returns a deep copy. Assignments and feedbacks are values, so cloning
// the slices is enough to detach them.
func (o *Order) Clone() *Order {
	c := *o
	c.assignments = slices.Clone(o.assignments)
	c.feedbacks = slices.Clone(o.feedbacks)
	if o.payment != nil {
		p := *o.payment
		c.payment = &p
	}
	return &c
}

func (o *Order) indexOf(sprayerID kernel.UUID) int {
	return slices.IndexFunc(o.assignments, func(a Assignment) bool {
		return a.sprayer.ID().IsEqual(sprayerID)
	})
}

func (o *Order) assignmentNotFound(sprayerID kernel.UUID) error {
	return fmt.Errorf("%w: %w", ErrAssignmentNotFound, errs.NewObjectNotFoundError("sprayerID", sprayerID))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setFarmerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.farmerID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCoordinates(c kernel.Coordinates) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.coordinates = c
	return nil
}

func (o *Order) setAssignments(assignments []Assignment) error {
	if err := validateAssignments(assignments); err != nil {
		return err
	}
	o.assignments = slices.Clone(assignments)
	return nil
}

func validateAssignments(assignments []Assignment) error {
	primaries := 0
	seen := make(map[kernel.UUID]struct{}, len(assignments))
	for _, a := range assignments {
		if err := a.sprayer.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.sprayer.ID()]; dup {
			return fmt.Errorf("%w: %s", ErrSprayerAlreadyAssigned, a.sprayer.ID())
		}
		seen[a.sprayer.ID()] = struct{}{}
		if a.isPrimary {
			primaries++
		}
	}
	if len(assignments) > 0 && primaries != 1 {
		return fmt.Errorf("%w: found %d", ErrPrimaryInvariantViolated, primaries)
	}
	return nil
}
