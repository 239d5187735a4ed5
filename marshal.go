package whatwgurl

import (
	"encoding/json"

	"github.com/joeycumines/go-utilpkg/jsonenc"
)

var (
	_ json.Marshaler   = (*URL)(nil)
	_ json.Unmarshaler = (*URL)(nil)
	_ json.Marshaler   = (*SearchParams)(nil)
)

// MarshalJSON encodes the URL as a JSON string, per [URL.ToJSON].
func (x *URL) MarshalJSON() ([]byte, error) {
	return jsonenc.AppendString(nil, x.serialize(false)), nil
}

// UnmarshalJSON decodes a JSON string, then behaves per [URL.UnmarshalText].
// A JSON null is a no-op.
func (x *URL) UnmarshalJSON(b []byte) error {
	if string(b) == `null` {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return x.UnmarshalText([]byte(s))
}

// MarshalText implements [encoding.TextMarshaler], returning the href.
func (x *URL) MarshalText() ([]byte, error) {
	return []byte(x.serialize(false)), nil
}

// UnmarshalText parses text as an absolute URL, per [URL.SetHref]. The zero
// value may be used, which will use the default configuration.
func (x *URL) UnmarshalText(text []byte) error {
	return x.SetHref(string(text))
}

// MarshalJSON encodes the list as a JSON array of two-element arrays.
func (x *SearchParams) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 2+len(x.list)*16)
	b = append(b, '[')
	for i, pair := range x.list {
		if i != 0 {
			b = append(b, ',')
		}
		b = append(b, '[')
		b = jsonenc.AppendString(b, pair[0])
		b = append(b, ',')
		b = jsonenc.AppendString(b, pair[1])
		b = append(b, ']')
	}
	b = append(b, ']')
	return b, nil
}
