package aoc

import (
	"log"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		log.Fatalf("not a digit: %q", r)
	}
	return int(r - '0')
}

// Number is a type that can be used in math functions.
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

// Product returns the product of the numbers, or 0 if there are none.
func Product[T Number](nums ...T) T {
	if len(nums) == 0 {
		return 0
	}
	p := T(1)
	for _, v := range nums {
		p *= v
	}
	return p
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
