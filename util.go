package enummap

import "fmt"

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func addCardinality(a, b int) int {
	n := a + b
	if n < a {
		panic(fmt.Errorf("enummap: cardinality overflow adding %d and %d", a, b))
	}
	return n
}

func mulCardinality(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	n := a * b
	if n/a != b {
		panic(fmt.Errorf("enummap: cardinality overflow multiplying %d by %d", a, b))
	}
	return n
}
