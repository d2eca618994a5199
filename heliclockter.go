package heliclockter

import (
	"time"

	"github.com/channable/heliclockter/internal/wall"
)

// DateTime is a timezone-aware datetime. The type parameter P fixes the
// variant: the zone assumed when input arrives naive. Every constructed
// value carries a resolved zone; Location never returns nil.
//
// DateTime is an immutable value type. Every mutation (Add, In, As) returns
// a new value, so copies may be shared across goroutines freely.
//
// The zero value is the zero instant in UTC. It is aware like any other
// value, but rarely what you want; prefer the constructors.
type DateTime[P Policy] struct {
	t time.Time
}

// Aliases for the built-in variants.
type (
	DateTimeTZ    = DateTime[TZ]
	DateTimeUTC   = DateTime[UTC]
	DateTimeLocal = DateTime[Local]
)

// Time returns the platform value, zone included.
func (d DateTime[P]) Time() time.Time { return d.t }

// Location returns the zone the value carries. Never nil.
func (d DateTime[P]) Location() *time.Location { return d.t.Location() }

func (d DateTime[P]) Year() int             { return d.t.Year() }
func (d DateTime[P]) Month() time.Month     { return d.t.Month() }
func (d DateTime[P]) Day() int              { return d.t.Day() }
func (d DateTime[P]) Hour() int             { return d.t.Hour() }
func (d DateTime[P]) Minute() int           { return d.t.Minute() }
func (d DateTime[P]) Second() int           { return d.t.Second() }
func (d DateTime[P]) Nanosecond() int       { return d.t.Nanosecond() }
func (d DateTime[P]) Weekday() time.Weekday { return d.t.Weekday() }
func (d DateTime[P]) Unix() int64           { return d.t.Unix() }
func (d DateTime[P]) UnixMicro() int64      { return d.t.UnixMicro() }
func (d DateTime[P]) IsZero() bool          { return d.t.IsZero() }

// Wall snapshots the calendar fields as a naive reading, fold included.
func (d DateTime[P]) Wall() Wall {
	w := wallOf(d.t)
	w.Fold = d.Fold()
	return w
}

// Fold reports whether this value is the second occurrence of its wall
// reading in its zone (1 across the repeated hour of a backward transition,
// 0 otherwise). It is recomputed from the instant, so a zone shift yields
// the fold of the new zone.
func (d DateTime[P]) Fold() int { return wall.FoldOf(d.t) }

// In shifts the value to a different zone while preserving the absolute
// instant. This is the one true instant-preserving transform; it delegates
// to the platform zone conversion.
func (d DateTime[P]) In(loc *time.Location) DateTime[P] {
	return DateTime[P]{t: d.t.In(loc)}
}

// InZone is In with the zone resolved by name through the timezone
// database; unknown names fail with the platform error.
func (d DateTime[P]) InZone(name string) (DateTime[P], error) {
	loc, err := LoadZone(name)
	if err != nil {
		return DateTime[P]{}, err
	}
	return d.In(loc), nil
}

// Add returns the value shifted by the duration. Offset arithmetic only:
// a day is exactly 24h and leap seconds do not exist here.
func (d DateTime[P]) Add(dur time.Duration) DateTime[P] {
	return DateTime[P]{t: d.t.Add(dur)}
}

// Sub returns the duration d - other. Retype with As first to subtract
// across variants.
func (d DateTime[P]) Sub(other DateTime[P]) time.Duration { return d.t.Sub(other.t) }

// Equal reports whether both values denote the same instant, regardless of
// the zone each carries.
func (d DateTime[P]) Equal(other DateTime[P]) bool { return d.t.Equal(other.t) }

func (d DateTime[P]) Before(other DateTime[P]) bool { return d.t.Before(other.t) }
func (d DateTime[P]) After(other DateTime[P]) bool  { return d.t.After(other.t) }

// Compare returns -1, 0 or 1 ordering d against other by instant.
func (d DateTime[P]) Compare(other DateTime[P]) int { return d.t.Compare(other.t) }

// Format renders the value with a platform reference layout.
func (d DateTime[P]) Format(layout string) string { return d.t.Format(layout) }

// Canonical serialization layouts: ISO-8601 with an explicit numeric offset
// (never a bare abbreviation, never "Z"), microseconds only when non-zero.
const (
	layoutCanonical      = "2006-01-02T15:04:05-07:00"
	layoutCanonicalMicro = "2006-01-02T15:04:05.000000-07:00"
)

// String returns the canonical textual form. Sub-microsecond precision is
// truncated.
func (d DateTime[P]) String() string {
	if d.t.Nanosecond() < int(time.Microsecond) {
		return d.t.Format(layoutCanonical)
	}
	return d.t.Format(layoutCanonicalMicro)
}
