// Package cubes evaluates the cube games of Advent of Code 2023, day 2.
//
// A game record looks like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// where each semicolon separated segment is one handful of cubes drawn
// from the bag.
package cubes

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maisem/aoc2023"
)

// Color is the color of a cube.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor returns the Color named s.
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if s == name {
			return Color(c), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Set is a count of cubes per color. Colors that were not seen are absent.
type Set map[Color]int

// Power returns the product of the counts in s. Absent colors are not part
// of the product. An empty set has power 0.
func (s Set) Power() int {
	counts := make([]int, 0, len(s))
	for _, n := range s {
		counts = append(counts, n)
	}
	return aoc.Product(counts...)
}

// DefaultBag is the bag that games are checked against.
var DefaultBag = Set{Red: 12, Green: 13, Blue: 14}

// Game is one parsed game record.
type Game struct {
	ID   int
	Sets []Set
}

// Possible reports whether every handful of g could have been drawn from
// bag. A color missing from bag allows no cubes of that color.
func (g Game) Possible(bag Set) bool {
	for _, s := range g.Sets {
		for c, n := range s {
			if n > bag[c] {
				return false
			}
		}
	}
	return true
}

// MinimumBag returns the fewest cubes of each color that the bag must
// have held for g to be possible. Only colors seen in g are present.
func (g Game) MinimumBag() Set {
	need := Set{}
	for _, s := range g.Sets {
		for c, n := range s {
			if cur, ok := need[c]; !ok || n > cur {
				need[c] = n
			}
		}
	}
	return need
}

// MalformedRecordError is returned for a line that is not a game record.
type MalformedRecordError struct {
	Line   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed game record %q: %s", e.Line, e.Reason)
}

// ParseGame parses a single game record. Any amount of white space is
// allowed around separators.
func ParseGame(line string) (Game, error) {
	bad := func(format string, args ...any) (Game, error) {
		return Game{}, &MalformedRecordError{Line: line, Reason: fmt.Sprintf(format, args...)}
	}
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return bad("missing colon")
	}
	f := strings.Fields(header)
	if len(f) != 2 || f[0] != "Game" {
		return bad(`header %q is not "Game <id>"`, strings.TrimSpace(header))
	}
	id, err := strconv.Atoi(f[1])
	if err != nil || id <= 0 {
		return bad("bad game id %q", f[1])
	}
	g := Game{ID: id}
	for i, seg := range strings.Split(body, ";") {
		s, err := parseSet(seg)
		if err != nil {
			return bad("set %d: %v", i+1, err)
		}
		g.Sets = append(g.Sets, s)
	}
	return g, nil
}

func parseSet(seg string) (Set, error) {
	if strings.TrimSpace(seg) == "" {
		return nil, errors.New("empty set")
	}
	s := Set{}
	for _, tok := range strings.Split(seg, ",") {
		f := strings.Fields(tok)
		if len(f) != 2 {
			return nil, fmt.Errorf(`%q is not "<count> <color>"`, strings.TrimSpace(tok))
		}
		n, err := strconv.Atoi(f[0])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad count %q", f[0])
		}
		c, err := ParseColor(f[1])
		if err != nil {
			return nil, err
		}
		// A color repeated within one handful keeps its largest count.
		if cur, ok := s[c]; !ok || n > cur {
			s[c] = n
		}
	}
	return s, nil
}

// ParseGames parses every line of r as a game record.
func ParseGames(r io.Reader) ([]Game, error) {
	return aoc.FoldLines(r, []Game(nil), func(games []Game, line string) ([]Game, error) {
		g, err := ParseGame(line)
		return append(games, g), err
	})
}

// SumPossible returns the sum of the IDs of the games in r that are
// possible with bag.
func SumPossible(r io.Reader, bag Set) (int, error) {
	return aoc.FoldLines(r, 0, func(total int, line string) (int, error) {
		g, err := ParseGame(line)
		if err != nil {
			return total, err
		}
		if g.Possible(bag) {
			total += g.ID
		}
		return total, nil
	})
}

// SumPower returns the sum of the powers of the minimum bags of the games
// in r.
func SumPower(r io.Reader) (int, error) {
	return aoc.FoldLines(r, 0, func(total int, line string) (int, error) {
		g, err := ParseGame(line)
		if err != nil {
			return total, err
		}
		return total + g.MinimumBag().Power(), nil
	})
}
