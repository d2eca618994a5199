package heliclockter_test

import (
	"testing"
	"time"

	heliclockter "github.com/channable/heliclockter"
)

// Tests cannot assert fixed offsets against the local variant because the
// zone depends on the machine running them, so a CET variant is declared
// here instead, the same way a consumer would declare one.
type cet struct{}

func (cet) AssumedLocation() *time.Location { return heliclockter.MustLoadZone("CET") }
func (cet) VariantName() string             { return "DateTimeCET" }

type dateTimeCET = heliclockter.DateTime[cet]

func withFixedClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := heliclockter.System
	heliclockter.System = heliclockter.Fixed(at)
	t.Cleanup(func() { heliclockter.System = prev })
}

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := heliclockter.LoadZone(name)
	if err != nil {
		t.Fatalf("load zone %s: %v", name, err)
	}
	return loc
}
