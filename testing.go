package aoc

import (
	"fmt"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/exp/maps"
)

// TestSamples runs every part of slvr in sample mode and reports a test
// failure for each answer that does not match its want= comment in src.
// Parts whose want is "???" are skipped.
func TestSamples(t testing.TB, src []byte, slvr any) {
	t.Helper()
	samples := extractSamples(src)
	days := extractMethods(slvr)
	if len(days) == 0 {
		t.Fatalf("%T has no D<day>p<part> methods", slvr)
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		p := &Puzzle{
			day:        days[d],
			samples:    samples,
			SampleMode: true,
			log:        zaptest.NewLogger(t),
		}
		attach(slvr, p)
		for _, ps := range days[d].parts {
			p.solver = ps
			s, ok := samples[ps.Name]
			if !ok {
				t.Errorf("%s: no sample", ps.Name)
				continue
			}
			if s.want == "???" {
				continue
			}
			if got := fmt.Sprint(ps.fn()); got != s.want {
				t.Errorf("%s sample = %v; want %v", ps.Name, got, s.want)
			}
		}
	}
}
