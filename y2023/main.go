// The y2023 command solves Advent of Code 2023.
package main

import (
	_ "embed"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/cubes"
	"github.com/maisem/aoc2023/trebuchet"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.MustGet(trebuchet.Sum(s.Reader(), trebuchet.Digits))
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.MustGet(trebuchet.Sum(s.Reader(), trebuchet.Words))
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	return aoc.MustGet(cubes.SumPossible(s.Reader(), cubes.DefaultBag))
}

// want=2286
func (s solver) D2p2() any {
	for _, g := range aoc.MustGet(cubes.ParseGames(s.Reader())) {
		bag := g.MinimumBag()
		s.Debugf("game %d needs %v (power %d)", g.ID, bag, bag.Power())
	}
	return aoc.MustGet(cubes.SumPower(s.Reader()))
}
