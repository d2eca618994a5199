package heliclockter_test

import (
	"testing"
	"time"

	heliclockter "github.com/channable/heliclockter"
)

func TestDelta_UnitsAreSummed(t *testing.T) {
	d := heliclockter.Delta{
		Weeks:        1,
		Days:         1,
		Hours:        1,
		Minutes:      1,
		Seconds:      1,
		Milliseconds: 1,
		Microseconds: 1,
	}
	want := 8*24*time.Hour + time.Hour + time.Minute + time.Second + time.Millisecond + time.Microsecond
	if got := d.Duration(); got != want {
		t.Fatalf("duration %v, want %v", got, want)
	}
}

func TestFutureAndPast(t *testing.T) {
	at := time.Date(2021, 1, 10, 9, 0, 0, 0, time.UTC)
	withFixedClock(t, at)

	future, err := heliclockter.Future[heliclockter.UTC](heliclockter.Delta{Hours: 2})
	if err != nil {
		t.Fatalf("future: %v", err)
	}
	if !future.Time().Equal(at.Add(2 * time.Hour)) {
		t.Fatalf("future: got %v, want %v", future.Time(), at.Add(2*time.Hour))
	}

	past, err := heliclockter.Past[heliclockter.UTC](heliclockter.Delta{Hours: 2})
	if err != nil {
		t.Fatalf("past: %v", err)
	}
	if !past.Time().Equal(at.Add(-2 * time.Hour)) {
		t.Fatalf("past: got %v, want %v", past.Time(), at.Add(-2*time.Hour))
	}

	// future(2h) then past(2h) from the same instant cancel exactly.
	if got := future.Sub(past); got != 4*time.Hour {
		t.Fatalf("expected 4h between future and past, got %v", got)
	}
	if !future.Add(-2 * time.Hour).Time().Equal(at) {
		t.Fatalf("relative construction did not return to the original instant")
	}
}

func TestFuture_BaseVariantRequiresExplicitZone(t *testing.T) {
	if _, err := heliclockter.Future[heliclockter.TZ](heliclockter.Delta{Hours: 1}); err == nil {
		t.Fatalf("expected error for the base variant without a zone")
	}

	at := time.Date(2021, 1, 10, 9, 0, 0, 0, time.UTC)
	withFixedClock(t, at)
	loc := mustZone(t, "CET")

	d, err := heliclockter.FutureIn[heliclockter.TZ](loc, heliclockter.Delta{Hours: 1})
	if err != nil {
		t.Fatalf("future in: %v", err)
	}
	if d.Location() != loc || !d.Time().Equal(at.Add(time.Hour)) {
		t.Fatalf("unexpected result: %v", d)
	}

	p, err := heliclockter.PastIn[heliclockter.TZ](loc, heliclockter.Delta{Hours: 1})
	if err != nil {
		t.Fatalf("past in: %v", err)
	}
	if !p.Time().Equal(at.Add(-time.Hour)) {
		t.Fatalf("unexpected result: %v", p)
	}
}
