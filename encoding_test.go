package enummap

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestJSONMarshal(t *testing.T) {
	m := FromMapWithDefault(map[bool]int{false: 24, true: 42}, 0)
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"false":24,"true":42}`, string(raw))
}

func TestJSONRoundTrip(t *testing.T) {
	i := 0
	orig := NewWith(func(Shape) int { i++; return i * 10 })
	raw, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded Map[Shape, int]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, Equal(orig, decoded))

	raw2, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, raw, raw2)
}

func TestJSONUnmarshalMissingKey(t *testing.T) {
	var m Map[Direction, int]
	err := json.Unmarshal([]byte(`{"North":1,"South":3}`), &m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotSpecified)

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "East", de.Key)
}

func TestJSONUnmarshalUnknownKey(t *testing.T) {
	var m Map[Direction, int]
	err := json.Unmarshal([]byte(`{"North":1,"East":2,"South":3,"Up":4}`), &m)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestJSONUnmarshalNotAMap(t *testing.T) {
	var m Map[bool, int]
	err := json.Unmarshal([]byte(`[1,2]`), &m)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.NotErrorIs(t, err, ErrKeyNotSpecified)
	assert.NotErrorIs(t, err, ErrUnknownKey)
}

func TestJSONUnmarshalNull(t *testing.T) {
	var m Map[bool, int]
	err := json.Unmarshal([]byte(`null`), &m)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.NotErrorIs(t, err, ErrKeyNotSpecified)
	assert.NotErrorIs(t, err, ErrUnknownKey)
}

func TestJSONUnmarshalDuplicateKeyLastWins(t *testing.T) {
	var m Map[bool, int]
	err := json.Unmarshal([]byte(`{"false":1,"true":2,"false":3}`), &m)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Get(false))
	assert.Equal(t, 2, m.Get(true))
}

func TestJSONUnmarshalErrorReturnsNoPartialMap(t *testing.T) {
	m := FromMapWithDefault(map[bool]int{true: 5}, 1)
	err := json.Unmarshal([]byte(`{"true":9}`), &m)
	require.Error(t, err)
	assert.Equal(t, []int{1, 5}, m.Values())
}

func TestMsgpackRoundTrip(t *testing.T) {
	orig := FromMapWithDefault(map[*bool]int{}, 0)
	i := 0
	for _, p := range orig.Ptrs() {
		i++
		*p = i * 11
	}

	raw, err := msgpack.Marshal(orig)
	require.NoError(t, err)

	var decoded Map[*bool, int]
	require.NoError(t, msgpack.Unmarshal(raw, &decoded))
	assert.Equal(t, orig.Values(), decoded.Values())
}

func TestMsgpackKeyText(t *testing.T) {
	m := FromMapWithDefault(map[Direction]int{North: 1, East: 2}, 3)
	raw, err := msgpack.Marshal(m)
	require.NoError(t, err)

	var generic map[string]int
	require.NoError(t, msgpack.Unmarshal(raw, &generic))
	assert.Equal(t, map[string]int{"North": 1, "East": 2, "South": 3}, generic)
}

func TestMsgpackMissingKey(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeMapLen(1))
	require.NoError(t, enc.EncodeString("true"))
	require.NoError(t, enc.Encode(42))

	var m Map[bool, int]
	err := msgpack.Unmarshal(buf.Bytes(), &m)
	assert.ErrorIs(t, err, ErrKeyNotSpecified)
}

func TestMsgpackDuplicateKeyLastWins(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeMapLen(3))
	for _, e := range []struct {
		key   string
		value int
	}{{"false", 1}, {"true", 2}, {"false", 3}} {
		require.NoError(t, enc.EncodeString(e.key))
		require.NoError(t, enc.Encode(e.value))
	}

	var m Map[bool, int]
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, []int{3, 2}, m.Values())
}

func TestMsgpackNotAMap(t *testing.T) {
	raw, err := msgpack.Marshal([]int{1, 2})
	require.NoError(t, err)

	var m Map[bool, int]
	err = msgpack.Unmarshal(raw, &m)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestVoidMapRoundTrip(t *testing.T) {
	m := New[Void, int]()
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))

	var decoded Map[Void, int]
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 0, decoded.Len())
}
