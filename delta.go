package heliclockter

import "time"

// Delta is a duration composed of independent unit fields. All units are
// summed before application; a week is 7 days and a day exactly 24h.
type Delta struct {
	Weeks        int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Milliseconds int64
	Microseconds int64
}

// Duration collapses the unit fields into a single platform duration.
func (d Delta) Duration() time.Duration {
	return time.Duration(d.Weeks)*7*24*time.Hour +
		time.Duration(d.Days)*24*time.Hour +
		time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second +
		time.Duration(d.Milliseconds)*time.Millisecond +
		time.Duration(d.Microseconds)*time.Microsecond
}

// Future returns now plus the delta, in the variant's assumed zone. Fails
// like Now does for a variant without one.
func Future[P Policy](d Delta) (DateTime[P], error) {
	now, err := Now[P]()
	if err != nil {
		return DateTime[P]{}, err
	}
	return now.Add(d.Duration()), nil
}

// Past returns now minus the delta. Future followed by Past with the same
// delta returns to the original instant exactly.
func Past[P Policy](d Delta) (DateTime[P], error) {
	now, err := Now[P]()
	if err != nil {
		return DateTime[P]{}, err
	}
	return now.Add(-d.Duration()), nil
}

// FutureIn is Future anchored to an explicitly given zone.
func FutureIn[P Policy](loc *time.Location, d Delta) (DateTime[P], error) {
	now, err := NowIn[P](loc)
	if err != nil {
		return DateTime[P]{}, err
	}
	return now.Add(d.Duration()), nil
}

// PastIn is Past anchored to an explicitly given zone.
func PastIn[P Policy](loc *time.Location, d Delta) (DateTime[P], error) {
	now, err := NowIn[P](loc)
	if err != nil {
		return DateTime[P]{}, err
	}
	return now.Add(-d.Duration()), nil
}
