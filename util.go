package aoc

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// FoldLines calls f for each line of r, with surrounding white space
// removed, passing along the value returned by the previous call. The first
// error stops the fold and is returned with its 1-based line number.
func FoldLines[R any](r io.Reader, acc R, f func(R, string) (R, error)) (R, error) {
	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		var err error
		acc, err = f(acc, strings.TrimSpace(s.Text()))
		if err != nil {
			var zero R
			return zero, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := s.Err(); err != nil {
		var zero R
		return zero, err
	}
	return acc, nil
}
