package heliclockter

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = DateTime[UTC]{}
	_ encoding.TextUnmarshaler = (*DateTime[UTC])(nil)
	_ json.Marshaler           = DateTime[UTC]{}
	_ json.Unmarshaler         = (*DateTime[UTC])(nil)
	_ yaml.Marshaler           = DateTime[UTC]{}
	_ yaml.Unmarshaler         = (*DateTime[UTC])(nil)
	_ msgpack.CustomEncoder    = DateTime[UTC]{}
	_ msgpack.CustomDecoder    = (*DateTime[UTC])(nil)
	_ driver.Valuer            = DateTime[UTC]{}
	_ sql.Scanner              = (*DateTime[UTC])(nil)
)

// MarshalText emits the canonical form: ISO-8601 with an explicit numeric
// offset, microseconds when non-zero.
func (d DateTime[P]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses canonical (and near-canonical ISO-8601) text through
// the construction engine, so the variant's naive-input rule applies to
// text without an offset.
func (d *DateTime[P]) UnmarshalText(b []byte) error {
	parsed, err := FromString[P](string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON emits the canonical form as a JSON string.
func (d DateTime[P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a JSON string in ISO-8601 form or a JSON number as
// a Unix timestamp in seconds, mirroring Coerce.
func (d *DateTime[P]) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return d.UnmarshalText([]byte(s))
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	parsed, err := Coerce[P](n)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateTime[P]) MarshalYAML() (any, error) { return d.String(), nil }

func (d *DateTime[P]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

func (d DateTime[P]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(d.String())
}

func (d *DateTime[P]) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// Value hands the platform value to SQL drivers, zone included.
func (d DateTime[P]) Value() (driver.Value, error) { return d.t, nil }

// Scan reads a driver value. time.Time columns keep their zone as-is; text
// columns go through the construction engine.
func (d *DateTime[P]) Scan(src any) error {
	switch x := src.(type) {
	case time.Time:
		*d = FromTime[P](x)
		return nil
	case string:
		return d.UnmarshalText([]byte(x))
	case []byte:
		return d.UnmarshalText(x)
	default:
		var p P
		return fmt.Errorf("heliclockter: cannot scan %T into %s", src, p.VariantName())
	}
}
