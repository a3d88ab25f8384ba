package enummap

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// The wire form of a map is a mapping from the textual form of each key to
// its value, in index order. Numeric indices are a storage detail and never
// appear on the wire.
//
// Decoding accepts entries in any order. A repeated key overwrites the
// earlier value (last write wins); a key never supplied fails with
// ErrKeyNotSpecified; a key outside the domain fails with ErrUnknownKey.
// No partially populated map is ever returned.

var _ msgpack.CustomEncoder = Map[bool, int]{}
var _ msgpack.CustomDecoder = (*Map[bool, int])(nil)

func (m Map[K, V]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(m.Len()); err != nil {
		return err
	}
	for i, v := range m.values {
		if err := enc.EncodeString(m.et.text(i)); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (m *Map[K, V]) DecodeMsgpack(dec *msgpack.Decoder) error {
	out := New[K, V]()
	n, err := dec.DecodeMapLen()
	if err != nil {
		return decodeErrf(out.et.typ, "", err, "expected a map")
	}
	seen := make([]bool, out.Len())
	for range n {
		key, err := dec.DecodeString()
		if err != nil {
			return decodeErrf(out.et.typ, "", err, "expected a string key")
		}
		i, ok := out.et.parse(key)
		if !ok {
			return decodeErrf(out.et.typ, key, ErrUnknownKey, "")
		}
		if err := dec.Decode(&out.values[i]); err != nil {
			return decodeErrf(out.et.typ, key, err, "bad value")
		}
		seen[i] = true
	}
	if err := checkAllSeen(out.et, seen); err != nil {
		return err
	}
	*m = out
	return nil
}

var _ json.Marshaler = Map[bool, int]{}
var _ json.Unmarshaler = (*Map[bool, int])(nil)

func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range m.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(m.et.text(i))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	out := New[K, V]()
	if string(bytes.TrimSpace(data)) == "null" {
		// json.Unmarshal leaves a nil map for null, which would read as
		// "every key missing"; null is malformed input, not an empty map.
		return decodeErrf(out.et.typ, "", nil, "expected a map, got null")
	}
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return decodeErrf(out.et.typ, "", err, "expected a map")
	}
	seen := make([]bool, out.Len())
	for key, raw := range entries {
		i, ok := out.et.parse(key)
		if !ok {
			return decodeErrf(out.et.typ, key, ErrUnknownKey, "")
		}
		if err := json.Unmarshal(raw, &out.values[i]); err != nil {
			return decodeErrf(out.et.typ, key, err, "bad value")
		}
		seen[i] = true
	}
	if err := checkAllSeen(out.et, seen); err != nil {
		return err
	}
	*m = out
	return nil
}

func checkAllSeen(et *enumType, seen []bool) error {
	for i, ok := range seen {
		if !ok {
			return decodeErrf(et.typ, et.text(i), ErrKeyNotSpecified, "")
		}
	}
	return nil
}
