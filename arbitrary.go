package enummap

import (
	"reflect"

	fuzz "github.com/google/gofuzz"
)

// Arbitrary builds a fully populated map from a supply of pseudo-random
// bytes, generating one value per key in ascending index order.
func Arbitrary[K comparable, V any](data []byte) Map[K, V] {
	return ArbitraryFrom[K, V](fuzz.NewFromGoFuzz(data).NilChance(0))
}

// ArbitraryFrom builds a fully populated map using the given fuzzer,
// generating one value per key in ascending index order.
func ArbitraryFrom[K comparable, V any](fz *fuzz.Fuzzer) Map[K, V] {
	return NewWith(func(K) V {
		var v V
		fz.Fuzz(&v)
		return v
	})
}

// ArbitrarySizeHint returns the declared byte consumption bounds of
// Arbitrary[K, V]: the key count times the in-memory size of V on both
// ends, or (0, 0) for an uninhabited key type.
func ArbitrarySizeHint[K comparable, V any]() (int, int) {
	n := enumTypeFor[K]().n
	if n == 0 {
		return 0, 0
	}
	size := n * int(reflect.TypeOf((*V)(nil)).Elem().Size())
	return size, size
}
