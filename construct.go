package heliclockter

import (
	"strings"
	"time"

	"github.com/channable/heliclockter/internal/wall"
)

// Now returns the current instant in the variant's assumed zone. The base
// variant has no assumed zone, so Now[TZ] fails; use NowIn instead.
func Now[P Policy]() (DateTime[P], error) {
	var p P
	loc := p.AssumedLocation()
	if loc == nil {
		return DateTime[P]{}, &TimezoneError{
			Op:      "now",
			Variant: p.VariantName(),
			Reason:  "variant assumes no timezone and no explicit zone was given",
		}
	}
	return DateTime[P]{t: System.Now().In(loc)}, nil
}

// NowIn returns the current instant in an explicitly given zone. The
// explicit zone wins over the variant's assumed zone.
func NowIn[P Policy](loc *time.Location) (DateTime[P], error) {
	var p P
	if loc == nil {
		return DateTime[P]{}, &TimezoneError{
			Op:      "now",
			Variant: p.VariantName(),
			Reason:  "explicit zone is nil",
		}
	}
	return DateTime[P]{t: System.Now().In(loc)}, nil
}

// FromTime wraps an aware platform value. The zone it carries is kept
// unchanged, with no re-interpretation; a time.Time cannot be naive, so this
// never fails. Naive readings enter through FromWall or the parse
// functions.
func FromTime[P Policy](t time.Time) DateTime[P] { return DateTime[P]{t: t} }

// FromWall constructs a value from a naive reading by attaching the
// variant's assumed zone. Attachment does not shift the clock fields:
// 15:30 naive becomes 15:30 in the assumed zone. The base variant assumes
// nothing and rejects the reading with a TimezoneError.
func FromWall[P Policy](w Wall) (DateTime[P], error) {
	var p P
	loc := p.AssumedLocation()
	if loc == nil {
		return DateTime[P]{}, errNaive[P]("from_wall")
	}
	return DateTime[P]{t: wall.Resolve(w.fields(), loc)}, nil
}

// FromWallIn attaches an explicitly given zone to a naive reading, for
// variants with and without an assumed zone alike.
func FromWallIn[P Policy](w Wall, loc *time.Location) (DateTime[P], error) {
	var p P
	if loc == nil {
		return DateTime[P]{}, &TimezoneError{
			Op:      "from_wall",
			Variant: p.VariantName(),
			Reason:  "explicit zone is nil",
		}
	}
	return DateTime[P]{t: wall.Resolve(w.fields(), loc)}, nil
}

// FromUnix converts a Unix timestamp (an absolute instant) into the
// variant, rendered in the variant's assumed zone, or UTC when the variant
// assumes none. No reinterpretation is involved; the instant is fixed.
func FromUnix[P Policy](sec int64, nsec int64) DateTime[P] {
	var p P
	loc := p.AssumedLocation()
	if loc == nil {
		loc = time.UTC
	}
	return DateTime[P]{t: time.Unix(sec, nsec).In(loc)}
}

// FromString parses an ISO-8601 / RFC 3339 style string. An explicit offset
// in the text becomes the value's zone; without one the text is naive and
// the variant's assumed-zone rule applies. Malformed text fails with the
// platform parse error.
func FromString[P Policy](s string) (DateTime[P], error) {
	if hasExplicitOffset(s) {
		t, err := parseOffsetString(s)
		if err != nil {
			return DateTime[P]{}, err
		}
		return FromTime[P](t), nil
	}
	w, err := parseNaiveString(s)
	if err != nil {
		return DateTime[P]{}, err
	}
	return FromWall[P](w)
}

// Parse parses text against a platform reference layout. A layout without
// zone tokens yields a naive reading, handled by the variant's assumed-zone
// rule; with zone tokens the parsed zone is kept unchanged.
func Parse[P Policy](layout, value string) (DateTime[P], error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return DateTime[P]{}, err
	}
	if layoutHasZone(layout) {
		return FromTime[P](t), nil
	}
	// time.Parse reads zone-less text as UTC; reclaim the fields as naive.
	return FromWall[P](wallOf(t))
}

// ParseIn parses zone-less text against a layout and attaches an explicitly
// given zone to the result, fold resolved as the earlier instant.
func ParseIn[P Policy](layout, value string, loc *time.Location) (DateTime[P], error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return DateTime[P]{}, err
	}
	if layoutHasZone(layout) {
		return FromTime[P](t), nil
	}
	return FromWallIn[P](wallOf(t), loc)
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

var offsetLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
}

func parseOffsetString(s string) (time.Time, error) {
	var err error
	for _, layout := range offsetLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func parseNaiveString(s string) (Wall, error) {
	var err error
	for _, layout := range naiveLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return wallOf(t), nil
		}
	}
	return Wall{}, err
}

// hasExplicitOffset reports whether the text ends in a numeric UTC offset or
// "Z". Only characters after the time part are considered, so the date's own
// dashes never count.
func hasExplicitOffset(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	for i := len(s) - 1; i > 10; i-- {
		switch s[i] {
		case '+', '-':
			return true
		case 'T', ' ':
			return false
		}
	}
	return false
}

// layoutHasZone reports whether a reference layout carries zone
// information. These are the platform's zone tokens: numeric offsets
// ("-07", "Z07") and abbreviations ("MST").
func layoutHasZone(layout string) bool {
	return strings.Contains(layout, "Z07") ||
		strings.Contains(layout, "-07") ||
		strings.Contains(layout, "MST")
}
