package heliclockter

import (
	"sync"
	"time"
)

// Policy fixes a variant's assumed timezone for naive input. It is the only
// piece of metadata a variant declares; all construction and conversion
// behavior derives from it.
//
// Declaring a custom variant is a one-method struct pinned to a named zone:
//
//	type CET struct{}
//
//	func (CET) AssumedLocation() *time.Location { return heliclockter.MustLoadZone("CET") }
//	func (CET) VariantName() string             { return "DateTimeCET" }
//
//	type DateTimeCET = heliclockter.DateTime[CET]
type Policy interface {
	// AssumedLocation reports the zone attached to naive input, or nil when
	// the variant makes no assumption and naive input must be rejected.
	AssumedLocation() *time.Location
	// VariantName identifies the variant in error messages.
	VariantName() string
}

// TZ is the base policy: no assumed zone. Naive input is rejected, so a
// DateTime[TZ] can only be built from input that already carries a zone or
// from an explicit attachment (NowIn, FromWallIn, ParseIn).
type TZ struct{}

func (TZ) AssumedLocation() *time.Location { return nil }
func (TZ) VariantName() string             { return "DateTimeTZ" }

// UTC assumes the UTC zone for naive input. DateTime[UTC] is the canonical
// storage/interchange variant: its default construction paths anchor it to
// UTC, though retyping an aware value into it keeps that value's zone as-is.
type UTC struct{}

func (UTC) AssumedLocation() *time.Location { return time.UTC }
func (UTC) VariantName() string             { return "DateTimeUTC" }

// Local assumes the process-local zone, read from the System clock at the
// time of use.
type Local struct{}

func (Local) AssumedLocation() *time.Location { return System.Local() }
func (Local) VariantName() string             { return "DateTimeLocal" }

// zoneCache memoizes IANA lookups; time.LoadLocation re-reads zone data per
// call for names other than "UTC" and "Local".
var zoneCache sync.Map // string -> *time.Location

// LoadZone resolves an IANA zone name ("Europe/Amsterdam", "UTC") through
// the platform timezone database. Unknown names fail with the platform
// error, unchanged.
func LoadZone(name string) (*time.Location, error) {
	if v, ok := zoneCache.Load(name); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	zoneCache.Store(name, loc)
	return loc, nil
}

// MustLoadZone is LoadZone for variant declarations; a policy pinned to an
// unknown zone should fail at startup, not at first use.
func MustLoadZone(name string) *time.Location {
	loc, err := LoadZone(name)
	if err != nil {
		panic(err)
	}
	return loc
}
