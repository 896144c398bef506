// Package utils implements small generic helpers shared across the library.
package utils

import "golang.org/x/exp/constraints"

// Min4 returns the smallest of the four inputs.
func Min4[T constraints.Ordered](a, b, c, d T) T {
	if b < a {
		a = b
	}
	if d < c {
		c = d
	}
	if c < a {
		return c
	}
	return a
}

// Max4 returns the largest of the four inputs.
func Max4[T constraints.Ordered](a, b, c, d T) T {
	if b > a {
		a = b
	}
	if d > c {
		c = d
	}
	if c > a {
		return c
	}
	return a
}
