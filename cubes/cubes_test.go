package cubes

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"tailscale.com/util/deephash"
)

const sample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseGame(t *testing.T) {
	game1 := Game{
		ID: 1,
		Sets: []Set{
			{Blue: 3, Red: 4},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}
	tests := []struct {
		line string
		want Game
	}{
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", game1},
		{"Game 1:3 blue,4 red;1 red,2 green,6 blue;2 green", game1},
		{"  Game   1 :  3  blue ,  4 red ;1 red, 2\tgreen , 6 blue ;   2 green  ", game1},
		{"Game 7: 0 red", Game{ID: 7, Sets: []Set{{Red: 0}}}},
		{"Game 8: 2 red, 5 red", Game{ID: 8, Sets: []Set{{Red: 5}}}},
	}
	for _, tt := range tests {
		got, err := ParseGame(tt.line)
		if err != nil {
			t.Errorf("ParseGame(%q): %v", tt.line, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestParseGameMalformed(t *testing.T) {
	tests := []string{
		"",
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game: 3 blue",
		"Game x: 3 blue",
		"Game 0: 3 blue",
		"Game 1:",
		"Game 1: 3 blue;",
		"Game 1: 3 blue,, 4 red",
		"Game 1: three blue",
		"Game 1: -3 blue",
		"Game 1: 3 purple",
		"Game 1: 3 Blue",
		"Game 1: 3 blue 4 red",
	}
	for _, line := range tests {
		_, err := ParseGame(line)
		var mre *MalformedRecordError
		if !errors.As(err, &mre) {
			t.Errorf("ParseGame(%q) error = %v; want MalformedRecordError", line, err)
			continue
		}
		if mre.Line != line {
			t.Errorf("ParseGame(%q) error line = %q", line, mre.Line)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if _, err := ParseColor("yellow"); err == nil {
		t.Error("ParseColor(yellow) succeeded")
	}
}

func TestSumPossible(t *testing.T) {
	tests := []struct {
		input string
		bag   Set
		want  int
	}{
		{sample, DefaultBag, 8},
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", DefaultBag, 1},
		{"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red", DefaultBag, 0},
		{"Game 9: 12 red, 13 green, 14 blue", DefaultBag, 9},
		{"Game 9: 1 red", Set{Green: 5}, 0},
		{"Game 9: 2 green", Set{Green: 5}, 9},
		{"", DefaultBag, 0},
	}
	for _, tt := range tests {
		got, err := SumPossible(strings.NewReader(tt.input), tt.bag)
		if err != nil {
			t.Errorf("SumPossible(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SumPossible(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSumPower(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{sample, 6*4*2 + 4*3*1 + 13*20*6 + 14*15*3 + 6*3*2},
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", 6 * 4 * 2},
		// Blue is never seen, so it is left out of the product.
		{"Game 1: 3 red; 5 green, 1 red", 3 * 5},
		{"Game 1: 0 red, 4 green", 0},
	}
	for _, tt := range tests {
		got, err := SumPower(strings.NewReader(tt.input))
		if err != nil {
			t.Errorf("SumPower(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SumPower(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestMinimumBag(t *testing.T) {
	games, err := ParseGames(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := []Set{
		{Red: 4, Green: 2, Blue: 6},
		{Red: 1, Green: 3, Blue: 4},
		{Red: 20, Green: 13, Blue: 6},
		{Red: 14, Green: 3, Blue: 15},
		{Red: 6, Green: 3, Blue: 2},
	}
	var got []Set
	for _, g := range games {
		got = append(got, g.MinimumBag())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MinimumBag mismatch (-want +got):\n%s", diff)
	}

	if p := (Set{}).Power(); p != 0 {
		t.Errorf("empty Power = %v; want 0", p)
	}
}

func TestSumAbortsOnBadLine(t *testing.T) {
	input := "Game 1: 1 red\nGame 2: 1 orange\nGame 3: 1 blue\n"
	_, err := SumPossible(strings.NewReader(input), DefaultBag)
	var mre *MalformedRecordError
	if !errors.As(err, &mre) {
		t.Fatalf("SumPossible error = %v; want MalformedRecordError", err)
	}
	if !strings.HasPrefix(err.Error(), "line 2: ") {
		t.Errorf("error %q does not name line 2", err)
	}
	if _, err := SumPower(strings.NewReader(input)); err == nil {
		t.Error("SumPower succeeded on bad input")
	}
}

func TestBlankLines(t *testing.T) {
	for _, input := range []string{"Game 1: 1 red\n\n", "\nGame 1: 1 red\n"} {
		_, err := SumPower(strings.NewReader(input))
		var mre *MalformedRecordError
		if !errors.As(err, &mre) || mre.Reason != "missing colon" {
			t.Errorf("SumPower(%q) error = %v; want missing colon", input, err)
		}
	}
	if got, err := SumPower(strings.NewReader("Game 1: 1 red\n")); err != nil || got != 1 {
		t.Errorf("SumPower = %v, %v; want 1", got, err)
	}
}

func TestIdempotent(t *testing.T) {
	parse := func() []Game {
		games, err := ParseGames(strings.NewReader(sample))
		if err != nil {
			t.Fatal(err)
		}
		return games
	}
	g1, g2 := parse(), parse()
	if deephash.Hash(&g1) != deephash.Hash(&g2) {
		t.Error("parsing the same input twice gave different games")
	}

	for i := 0; i < 3; i++ {
		possible, err := SumPossible(strings.NewReader(sample), DefaultBag)
		if err != nil || possible != 8 {
			t.Errorf("run %d: SumPossible = %v, %v; want 8", i, possible, err)
		}
		power, err := SumPower(strings.NewReader(sample))
		if err != nil || power != 2286 {
			t.Errorf("run %d: SumPower = %v, %v; want 2286", i, power, err)
		}
	}
}
