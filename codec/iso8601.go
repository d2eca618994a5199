// Package codec provides wire codecs for the datetime variants, the shape a
// validation/serialization framework binds its fields to. The core library
// does not depend on any such framework being present; these codecs only
// delegate to the construction engine and the canonical serializer.
package codec

import (
	"context"

	"github.com/goccy/go-json"

	heliclockter "github.com/channable/heliclockter"
)

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// ISO8601 returns a Codec between canonical ISO-8601 strings and the
// variant. Decoding applies the variant's naive-input rule to strings
// without an explicit offset; encoding always emits an explicit numeric
// offset.
func ISO8601[P heliclockter.Policy]() Codec[string, heliclockter.DateTime[P]] {
	return iso8601Codec[P]{}
}

type iso8601Codec[P heliclockter.Policy] struct{}

func (iso8601Codec[P]) Decode(ctx context.Context, a string) (heliclockter.DateTime[P], error) {
	return heliclockter.FromString[P](a)
}

func (iso8601Codec[P]) Encode(ctx context.Context, b heliclockter.DateTime[P]) (string, error) {
	s := b.String()
	// The emitted wire form must itself be acceptable input.
	if _, err := heliclockter.FromString[P](s); err != nil {
		return "", err
	}
	return s, nil
}

// Any returns a Codec accepting any coercible value on the wire side:
// strings, byte slices, numeric timestamps, platform times, naive readings
// and other variants. See heliclockter.Coerce for the accepted set.
func Any[P heliclockter.Policy]() Codec[any, heliclockter.DateTime[P]] {
	return anyCodec[P]{}
}

type anyCodec[P heliclockter.Policy] struct{}

func (anyCodec[P]) Decode(ctx context.Context, a any) (heliclockter.DateTime[P], error) {
	return heliclockter.Coerce[P](a)
}

func (anyCodec[P]) Encode(ctx context.Context, b heliclockter.DateTime[P]) (any, error) {
	return b.String(), nil
}

// JSON returns a Codec between raw JSON bytes and the variant, using the
// go-json driver. Strings decode as ISO-8601 text and numbers as Unix
// timestamps in seconds.
func JSON[P heliclockter.Policy]() Codec[[]byte, heliclockter.DateTime[P]] {
	return jsonCodec[P]{}
}

type jsonCodec[P heliclockter.Policy] struct{}

func (jsonCodec[P]) Decode(ctx context.Context, a []byte) (heliclockter.DateTime[P], error) {
	var d heliclockter.DateTime[P]
	if err := json.Unmarshal(a, &d); err != nil {
		return heliclockter.DateTime[P]{}, err
	}
	return d, nil
}

func (jsonCodec[P]) Encode(ctx context.Context, b heliclockter.DateTime[P]) ([]byte, error) {
	return json.Marshal(b)
}
