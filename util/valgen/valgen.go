// Some helpers using closures to generate values
package valgen

import "bytes"

func MakeConstGen(constant int) func() int {
	return func() int {
		return constant
	}
}

func MakeIncreasingGen(start int) func() int {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeCyclicGen repeats values in order.
func MakeCyclicGen(values ...int) func() int {
	if len(values) == 0 {
		panic("cyclic generator needs at least one value")
	}
	i := -1
	return func() int {
		i = (i + 1) % len(values)
		return values[i]
	}
}

// Bytes draws n values from gen and keeps the low byte of each.
func Bytes(gen func() int, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(gen())
	}
	return out
}

// Input returns n generated bytes as a console input stream.
func Input(gen func() int, n int) *bytes.Reader {
	return bytes.NewReader(Bytes(gen, n))
}
