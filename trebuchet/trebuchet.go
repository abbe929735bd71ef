// Package trebuchet recovers calibration values from the amended
// calibration document of Advent of Code 2023, day 1.
//
// A calibration value is the first digit of a line followed by its last
// digit, read as a two-digit number.
package trebuchet

import (
	"fmt"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/maisem/aoc2023"
)

// Mode selects what counts as a digit.
type Mode int

const (
	// Digits only recognizes the characters 0 through 9.
	Digits Mode = iota
	// Words also recognizes the spelled out digits "one" through "nine",
	// in any case.
	Words
)

func (m Mode) String() string {
	switch m {
	case Digits:
		return "digits"
	case Words:
		return "words"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

var words = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// wordValues maps both the forward and reversed spelling of each word to
// its value.
var wordValues = func() map[string]int {
	m := make(map[string]int, 2*len(words))
	for i, w := range words {
		m[w] = i + 1
		m[reverse(w)] = i + 1
	}
	return m
}()

type patterns struct {
	forward  *regexp.Regexp // run on the line
	backward *regexp.Regexp // run on the reversed line
}

var byMode = map[Mode]patterns{
	Digits: {
		forward:  regexp.MustCompile(`[0-9]`),
		backward: regexp.MustCompile(`[0-9]`),
	},
	Words: {
		forward:  wordsRx(words),
		backward: wordsRx(reverseAll(words)),
	},
}

func wordsRx(ws []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)[0-9]|` + strings.Join(ws, "|"))
}

// MissingDigitError is returned for a line without any digit.
type MissingDigitError struct {
	Line string
}

func (e *MissingDigitError) Error() string {
	return fmt.Sprintf("no digit in %q", e.Line)
}

// Value returns the calibration value of line.
//
// The last digit is found by scanning the reversed line for reversed
// spellings, independently of the forward scan, so that overlapping words
// resolve differently from each end: "twone" starts with 2 and ends with 1.
func Value(line string, mode Mode) (int, error) {
	p, ok := byMode[mode]
	if !ok {
		return 0, fmt.Errorf("unknown mode %v", mode)
	}
	first := p.forward.FindString(line)
	if first == "" {
		return 0, &MissingDigitError{Line: line}
	}
	last := p.backward.FindString(reverse(line))
	return 10*digitValue(first) + digitValue(last), nil
}

func digitValue(m string) int {
	if len(m) == 1 {
		return aoc.Digit(rune(m[0]))
	}
	return wordValues[strings.ToLower(m)]
}

// Sum returns the sum of the calibration values of all lines in r.
func Sum(r io.Reader, mode Mode) (int, error) {
	return aoc.FoldLines(r, 0, func(total int, line string) (int, error) {
		v, err := Value(line, mode)
		return total + v, err
	})
}

// SumLines is like Sum for lines already in memory.
func SumLines(lines []string, mode Mode) (int, error) {
	vals := make([]int, 0, len(lines))
	for i, line := range lines {
		v, err := Value(strings.TrimSpace(line), mode)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		vals = append(vals, v)
	}
	return aoc.Sum(vals...), nil
}

func reverse(s string) string {
	r := []rune(s)
	slices.Reverse(r)
	return string(r)
}

func reverseAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = reverse(s)
	}
	return out
}
