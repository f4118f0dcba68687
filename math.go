package aoc

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T constraints.Integer](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}

// Mod returns x modulo m in the range [0, m).
func Mod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
