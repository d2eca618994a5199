package heliclockter

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
)

// As retypes a value into the destination variant. The zone the value
// carries is kept as-is with no forced shift, so a DateTime[UTC] produced
// this way is guaranteed aware but not guaranteed to literally read in UTC;
// only the default construction paths (Now, zone-less parses) anchor a
// variant to its nominal zone. Retyping into the same variant is the
// identity.
func As[Dst Policy, Src Policy](d DateTime[Src]) DateTime[Dst] {
	return DateTime[Dst]{t: d.t}
}

// instantCarrier matches any DateTime variant (and any other type exposing
// its instant the same way) without naming the variant.
type instantCarrier interface {
	Time() time.Time
}

// Coerce validates an arbitrary value into the variant. This is the hook a
// validation/serialization framework binds to. Accepted inputs:
//
//   - DateTime of any variant, or anything exposing Time() time.Time: the
//     zone is kept as-is (see As)
//   - time.Time: aware by definition, zone kept as-is
//   - Wall: naive, subject to the variant's assumed-zone rule
//   - string, []byte: ISO-8601 text (see FromString)
//   - int, int64, float64, json.Number: Unix timestamp in seconds
//
// Anything else fails with a plain type error; timezone-resolution failures
// keep their TimezoneError kind.
func Coerce[P Policy](v any) (DateTime[P], error) {
	switch x := v.(type) {
	case DateTime[P]:
		return x, nil
	case instantCarrier:
		return FromTime[P](x.Time()), nil
	case time.Time:
		return FromTime[P](x), nil
	case Wall:
		return FromWall[P](x)
	case string:
		return FromString[P](x)
	case []byte:
		return FromString[P](string(x))
	case int:
		return FromUnix[P](int64(x), 0), nil
	case int64:
		return FromUnix[P](x, 0), nil
	case float64:
		return fromUnixFloat[P](x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return FromUnix[P](n, 0), nil
		}
		f, err := x.Float64()
		if err != nil {
			return DateTime[P]{}, err
		}
		return fromUnixFloat[P](f), nil
	default:
		var p P
		return DateTime[P]{}, fmt.Errorf("heliclockter: cannot coerce %T into %s", v, p.VariantName())
	}
}

func fromUnixFloat[P Policy](sec float64) DateTime[P] {
	whole, frac := math.Modf(sec)
	return FromUnix[P](int64(whole), int64(math.Round(frac*float64(time.Second))))
}
