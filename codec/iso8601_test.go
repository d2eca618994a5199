package codec

import (
	"context"
	"testing"
	"time"

	heliclockter "github.com/channable/heliclockter"
)

func TestISO8601_Codec_Basic(t *testing.T) {
	c := ISO8601[heliclockter.TZ]()
	ctx := context.Background()

	in := "2022-11-04T15:30:00+01:00"
	got, err := c.Decode(ctx, in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Time().Equal(time.Date(2022, 11, 4, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected instant: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestISO8601_NaivePolicy(t *testing.T) {
	ctx := context.Background()

	if _, err := ISO8601[heliclockter.TZ]().Decode(ctx, "2021-01-01T10:00:00"); err == nil {
		t.Fatalf("expected naive rejection for the base variant")
	}

	got, err := ISO8601[heliclockter.UTC]().Decode(ctx, "2021-01-01T10:00:00")
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got.Hour() != 10 || got.Location() != time.UTC {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestAny_Codec(t *testing.T) {
	c := Any[heliclockter.UTC]()
	ctx := context.Background()

	want := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, in := range []any{
		"2021-01-01T00:00:00+00:00",
		int64(1609459200),
		want,
	} {
		got, err := c.Decode(ctx, in)
		if err != nil {
			t.Fatalf("decode %T err: %v", in, err)
		}
		if !got.Time().Equal(want) {
			t.Fatalf("decode %T: got %v", in, got.Time())
		}
	}

	out, err := c.Encode(ctx, heliclockter.FromTime[heliclockter.UTC](want))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2021-01-01T00:00:00+00:00" {
		t.Fatalf("unexpected wire form: %v", out)
	}
}

func TestJSON_Codec(t *testing.T) {
	c := JSON[heliclockter.UTC]()
	ctx := context.Background()

	got, err := c.Decode(ctx, []byte(`"2021-01-01T00:00:00+00:00"`))
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}

	b, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if string(b) != `"2021-01-01T00:00:00+00:00"` {
		t.Fatalf("unexpected wire form: %s", b)
	}

	num, err := c.Decode(ctx, []byte(`1609459200`))
	if err != nil {
		t.Fatalf("decode number err: %v", err)
	}
	if !num.Equal(got) {
		t.Fatalf("numeric decode mismatch: %v != %v", num, got)
	}
}
