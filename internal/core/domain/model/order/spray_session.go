package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"spraying/internal/pkg/errs"
	"spraying/internal/pkg/guard"
)

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"
)

var ErrSpraySessionIsNotConstructed = errs.NewValueIsRequiredError(
	"spray session must be created via NewSpraySession or ParseSchedule")

// SpraySession is the scheduled window of a spraying job: one calendar date
// with a start and end time on that date. Times are wall-clock at the field
// and carried in UTC without conversion.
type SpraySession struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewSpraySession requires end strictly after start, both on the same date.
func NewSpraySession(start, end time.Time) (SpraySession, error) {
	start = start.UTC().Truncate(time.Minute)
	end = end.UTC().Truncate(time.Minute)

	if start.IsZero() || end.IsZero() {
		return SpraySession{}, errs.NewValueIsRequiredError("spray session start and end")
	}
	if !end.After(start) {
		return SpraySession{}, errs.NewValueIsInvalidErrorWithCause(
			"spray session is invalid", fmt.Errorf("end %s is not after start %s",
				end.Format(scheduleTimeLayout), start.Format(scheduleTimeLayout)))
	}
	if start.Format(scheduleDateLayout) != end.Format(scheduleDateLayout) {
		return SpraySession{}, errs.NewValueIsInvalidErrorWithCause(
			"spray session is invalid", errors.New("start and end must be on the same date"))
	}

	return SpraySession{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// ParseSchedule parses the composed "YYYY-MM-DD HH:MM-HH:MM" form.
func ParseSchedule(raw string) (SpraySession, error) {
	invalid := func(cause error) error {
		return errs.NewValueIsInvalidErrorWithCause("schedule is invalid", cause)
	}

	datePart, window, ok := strings.Cut(strings.TrimSpace(raw), " ")
	if !ok {
		return SpraySession{}, invalid(fmt.Errorf("%q is not in YYYY-MM-DD HH:MM-HH:MM form", raw))
	}
	startPart, endPart, ok := strings.Cut(strings.TrimSpace(window), "-")
	if !ok {
		return SpraySession{}, invalid(fmt.Errorf("%q has no time range", raw))
	}

	date, err := time.ParseInLocation(scheduleDateLayout, datePart, time.UTC)
	if err != nil {
		return SpraySession{}, invalid(err)
	}
	start, err := time.ParseInLocation(scheduleTimeLayout, strings.TrimSpace(startPart), time.UTC)
	if err != nil {
		return SpraySession{}, invalid(err)
	}
	end, err := time.ParseInLocation(scheduleTimeLayout, strings.TrimSpace(endPart), time.UTC)
	if err != nil {
		return SpraySession{}, invalid(err)
	}

	at := func(clock time.Time) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	}
	return NewSpraySession(at(start), at(end))
}

// Validate ensures the session was created through NewSpraySession or
// ParseSchedule.
func (s SpraySession) Validate() error {
	return s.guard.Validate(ErrSpraySessionIsNotConstructed)
}

// Date is the session day at midnight UTC.
func (s SpraySession) Date() time.Time {
	return time.Date(s.start.Year(), s.start.Month(), s.start.Day(), 0, 0, 0, 0, time.UTC)
}

// Start returns the start of the window.
func (s SpraySession) Start() time.Time {
	return s.start
}

// End returns the end of the window.
func (s SpraySession) End() time.Time {
	return s.end
}

// Duration is the length of the window. It is always positive for a valid
// session.
func (s SpraySession) Duration() time.Duration {
	return s.end.Sub(s.start)
}

// String renders the form accepted by ParseSchedule.
func (s SpraySession) String() string {
	return s.start.Format(scheduleDateLayout) + " " +
		s.start.Format(scheduleTimeLayout) + "-" + s.end.Format(scheduleTimeLayout)
}

// IsEqual compares start and end instants.
func (s SpraySession) IsEqual(other SpraySession) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}
