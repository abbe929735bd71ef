// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

// Puzzle is embedded (as a pointer) in a solver struct. It gives the solver
// access to the input of the day and part currently running.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	opts    options
	log     *zap.Logger
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.opts.input != "" {
		return MustGet(os.ReadFile(p.opts.input))
	}
	return p.fileOrFetch(fmt.Sprintf("%d/%d.input", p.year, p.day.day), fmt.Sprintf("https://adventofcode.com/%d/day/%d/input", p.year, p.day.day))
}

// Reader returns a reader over Input.
func (p *Puzzle) Reader() io.Reader {
	return bytes.NewReader(p.Input())
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(p.Reader())
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) Debug(v ...any) {
	p.log.Sugar().Debugln(v...)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Sugar().Debugf(format, args...)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() any.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("Register: %s has type %v; want func() any", mn, mt.Type)
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

// attach points the solver's embedded *Puzzle at p.
func attach(slvr any, p *Puzzle) {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() {
		log.Fatalf("%T does not embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
}

type options struct {
	day        int
	part       string
	input      string
	debug      bool
	onlySample bool
	skipSample bool
}

var (
	pass = color.New(color.FgGreen).SprintFunc()
	fail = color.New(color.FgRed).SprintFunc()
)

type runner struct {
	year    int
	slvr    any
	samples map[string]sample
	opts    options
	log     *zap.Logger
	out     io.Writer
}

// runDay runs every part of day, first against its sample and then
// against the real input. It stops at the first sample mismatch.
func (r *runner) runDay(day day) {
	p := Puzzle{
		year:    r.year,
		day:     day,
		samples: r.samples,
		opts:    r.opts,
		log:     r.log.With(zap.Int("day", day.day)),
	}
	fmt.Fprintln(r.out, "Running day", day.day)
	attach(r.slvr, &p)
	for _, ps := range day.parts {
		p.solver = ps
		if r.opts.part != "" && ps.Part != r.opts.part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.opts.onlySample {
				continue
			} else if sm && r.opts.skipSample {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			p.log.Debug("part finished", zap.String("part", ps.Part), zap.Bool("sample", sm), zap.Duration("took", took))
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Fprintf(r.out, "part %s: %v %s; want %v\n", ps.Part, got, fail("❌"), sample.want)
					return
				}
				fmt.Fprintf(r.out, "part %s sample: %v %s (%v) \n", ps.Part, got, pass("✅"), took)
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v) \n", ps.Part, got, took)
			}
		}
	}
}

func (r *runner) run(days map[int]day) error {
	if r.opts.day != -1 {
		day, ok := days[r.opts.day]
		if !ok {
			return fmt.Errorf("no day %d", r.opts.day)
		}
		r.runDay(day)
		return nil
	}
	if r.opts.input != "" {
		return fmt.Errorf("--input requires --day")
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		r.runDay(days[day])
		fmt.Fprintln(r.out)
	}
	return nil
}

func newCommand(year int, src []byte, slvr any) *cobra.Command {
	opts := options{day: -1}
	cmd := &cobra.Command{
		Use:          fmt.Sprintf("aoc%d", year),
		Short:        fmt.Sprintf("Run Advent of Code %d solutions against their samples and inputs", year),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.debug)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			r := &runner{
				year:    year,
				slvr:    slvr,
				samples: extractSamples(src),
				opts:    opts,
				log:     logger.With(zap.Int("year", year)),
				out:     cmd.OutOrStdout(),
			}
			return r.run(extractMethods(slvr))
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.day, "day", -1, "day to run")
	f.BoolVar(&opts.onlySample, "sample", false, "only run sample")
	f.BoolVar(&opts.skipSample, "skip-sample", false, "skip sample")
	f.BoolVar(&opts.debug, "debug", false, "debug mode")
	f.StringVar(&opts.part, "part", "", "part to run")
	f.StringVar(&opts.input, "input", "", "read the real input from this file instead of the cache")
	cmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
	return cmd
}

// Run runs the solvers of slvr for the given year. src is the solver's
// own source, from which samples are extracted.
func Run(year int, src []byte, slvr any) {
	if err := newCommand(year, src, slvr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopmentConfig().Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
