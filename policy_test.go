package heliclockter_test

import (
	"testing"
	"time"

	heliclockter "github.com/channable/heliclockter"
)

func TestCustomVariant(t *testing.T) {
	// The cet policy declared in helpers_test.go is the whole extension
	// point: one struct with the assumed zone, everything else derives.
	d, err := heliclockter.FromWall[cet](heliclockter.Wall{Year: 2021, Month: time.June, Day: 1, Hour: 10})
	if err != nil {
		t.Fatalf("from wall: %v", err)
	}
	if d.Hour() != 10 {
		t.Fatalf("attachment shifted the clock: %d", d.Hour())
	}
	if _, off := d.Time().Zone(); off != 2*3600 {
		t.Fatalf("expected CEST offset in June, got %d", off)
	}

	var _ dateTimeCET = d
}

func TestLoadZone(t *testing.T) {
	loc, err := heliclockter.LoadZone("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	again, err := heliclockter.LoadZone("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	if loc != again {
		t.Fatalf("lookups are cached; expected the same *time.Location")
	}

	if _, err := heliclockter.LoadZone("Not/AZone"); err == nil {
		t.Fatalf("expected unknown zone error")
	}
}

func TestMustLoadZone_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown zone")
		}
	}()
	heliclockter.MustLoadZone("Not/AZone")
}
