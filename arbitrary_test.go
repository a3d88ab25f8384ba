package enummap

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
)

func TestArbitrary(t *testing.T) {
	data := []byte("some unstructured input bytes for the generator to eat")
	m := Arbitrary[Direction, uint16](data)
	assert.Equal(t, 3, m.Len())

	// Same bytes, same map.
	m2 := Arbitrary[Direction, uint16](data)
	assert.Equal(t, m.Values(), m2.Values())
}

func TestArbitraryFrom(t *testing.T) {
	m := ArbitraryFrom[Shape, int](fuzz.NewWithSeed(31415))
	m2 := ArbitraryFrom[Shape, int](fuzz.NewWithSeed(31415))
	assert.Equal(t, m.Values(), m2.Values())
	assert.Equal(t, 9, m.Len())
}

func TestArbitraryVoid(t *testing.T) {
	m := Arbitrary[Void, int](nil)
	assert.Equal(t, 0, m.Len())
}

func TestArbitrarySizeHint(t *testing.T) {
	lo, hi := ArbitrarySizeHint[Direction, uint16]()
	assert.Equal(t, 3*2, lo)
	assert.Equal(t, 3*2, hi)

	lo, hi = ArbitrarySizeHint[Void, uint64]()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}
