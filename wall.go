package heliclockter

import (
	"time"

	"github.com/channable/heliclockter/internal/wall"
)

// Wall is a naive clock reading: calendar fields with no timezone attached.
// It is the only way naive input enters the construction engine; a
// time.Time cannot represent naiveness (a nil location reads as UTC), so
// strings and layouts without zone information parse into a Wall first.
type Wall struct {
	Year                             int
	Month                            time.Month
	Day                              int
	Hour, Minute, Second, Nanosecond int
	// Fold disambiguates a reading that occurs twice across a backward zone
	// transition: 0 selects the earlier instant, 1 the later.
	Fold int
}

func (w Wall) fields() wall.Fields {
	return wall.Fields{
		Year: w.Year, Month: w.Month, Day: w.Day,
		Hour: w.Hour, Min: w.Minute, Sec: w.Second, Nsec: w.Nanosecond,
		Fold: w.Fold,
	}
}

func wallOf(t time.Time) Wall {
	f := wall.Of(t)
	return Wall{
		Year: f.Year, Month: f.Month, Day: f.Day,
		Hour: f.Hour, Minute: f.Min, Second: f.Sec, Nanosecond: f.Nsec,
	}
}
