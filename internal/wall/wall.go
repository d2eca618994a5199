// Package wall resolves naive wall-clock readings onto absolute instants,
// including the disambiguation of readings repeated by a backward zone
// transition.
package wall

import "time"

// Fields is a civil clock reading with a fold flag. Fold selects between the
// two instants an ambiguous reading maps to: 0 the earlier, 1 the later.
type Fields struct {
	Year                 int
	Month                time.Month
	Day                  int
	Hour, Min, Sec, Nsec int
	Fold                 int
}

// Resolve maps a civil reading onto an absolute instant in loc.
//
// The reading is first treated as if it were UTC, then corrected by each
// distinct zone offset observed around that instant. A candidate offset is
// kept when reading the corrected instant back in loc reproduces the civil
// fields. Two surviving candidates mean the reading is ambiguous and Fold
// picks one; zero survivors mean the reading sits in a forward gap, where
// the platform time.Date normalization applies.
func Resolve(f Fields, loc *time.Location) time.Time {
	utcGuess := time.Date(f.Year, f.Month, f.Day, f.Hour, f.Min, f.Sec, f.Nsec, time.UTC)

	var matches []time.Time
	for _, off := range offsetsAround(utcGuess, loc) {
		t := utcGuess.Add(-time.Duration(off) * time.Second).In(loc)
		if sameWall(t, f) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0]
	case 2:
		earlier, later := matches[0], matches[1]
		if later.Before(earlier) {
			earlier, later = later, earlier
		}
		if f.Fold == 0 {
			return earlier
		}
		return later
	default:
		return time.Date(f.Year, f.Month, f.Day, f.Hour, f.Min, f.Sec, f.Nsec, loc)
	}
}

// FoldOf reports whether t is the second occurrence of its own wall reading
// in its zone.
func FoldOf(t time.Time) int {
	f := Of(t)
	f.Fold = 0
	if Resolve(f, t.Location()).Equal(t) {
		return 0
	}
	return 1
}

// Of snapshots the civil fields of t. The Fold field is left zero; use
// FoldOf when the fold matters.
func Of(t time.Time) Fields {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return Fields{
		Year: year, Month: month, Day: day,
		Hour: hour, Min: min, Sec: sec, Nsec: t.Nanosecond(),
	}
}

// offsetsAround returns the distinct UTC offsets loc uses within a day or so
// of the instant. No real zone shifts by more than 28h, so probing both
// sides captures every offset a transition could involve.
func offsetsAround(t time.Time, loc *time.Location) []int {
	const probe = 28 * time.Hour
	seen := make(map[int]struct{}, 3)
	var out []int
	for _, d := range []time.Duration{-probe, 0, probe} {
		_, off := t.Add(d).In(loc).Zone()
		if _, ok := seen[off]; !ok {
			seen[off] = struct{}{}
			out = append(out, off)
		}
	}
	return out
}

func sameWall(t time.Time, f Fields) bool {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return year == f.Year && month == f.Month && day == f.Day &&
		hour == f.Hour && min == f.Min && sec == f.Sec && t.Nanosecond() == f.Nsec
}
