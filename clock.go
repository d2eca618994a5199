package heliclockter

import "time"

// Clock supplies the current instant and the process-local zone. It is the
// one external collaborator the construction engine reads from; everything
// else in this package is a pure function of its inputs.
type Clock interface {
	Now() time.Time
	Local() *time.Location
}

// System is the Clock used by Now, Future and the Local policy. Tests may
// swap it for a Fixed clock.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Local() *time.Location { return time.Local }

// Fixed returns a Clock pinned to the instant t. Its local zone is the zone
// t itself carries.
func Fixed(t time.Time) Clock { return fixedClock(t) }

type fixedClock time.Time

func (c fixedClock) Now() time.Time        { return time.Time(c) }
func (c fixedClock) Local() *time.Location { return time.Time(c).Location() }
