// Package roundtrip checks converters against expected bit patterns and
// round-trip properties. Every check returns its own Result, the caller
// aggregates them with Summarize.
package roundtrip

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/avdva/binfloat"
)

// Case is a single expectation.
// A plain case converts Input from From to To and expects Want.
// A round-trip case converts Input from From to To and back, and expects Want.
type Case struct {
	Group     string
	Name      string
	Input     uint64
	From, To  binfloat.Format
	Want      uint64
	RoundTrip bool
	// Outcome is only compared if CheckOutcome is set.
	// For round trips it is the outcome of the way back.
	Outcome      binfloat.Outcome
	CheckOutcome bool
}

// Result is a checked Case.
type Result struct {
	Case
	Mid        uint64 // the intermediate value of a round trip
	Got        uint64
	GotOutcome binfloat.Outcome
	Pass       bool
}

// Report aggregates results.
type Report struct {
	Total    int
	Failed   int
	Failures []Result
}

// Convert returns a case for a one-way conversion.
func Convert(name string, in uint64, from, to binfloat.Format, want uint64, outcome binfloat.Outcome) Case {
	return Case{Name: name, Input: in, From: from, To: to, Want: want, Outcome: outcome, CheckOutcome: true}
}

// RoundTrip returns a case, which expects x to survive narrow -> wide -> narrow unchanged.
func RoundTrip(name string, x uint64, narrow, wide binfloat.Format) Case {
	return Case{
		Name:         name,
		Input:        x,
		From:         narrow,
		To:           wide,
		Want:         x,
		RoundTrip:    true,
		Outcome:      binfloat.Exact,
		CheckOutcome: true,
	}
}

// Check runs a case.
func Check(c Case) Result {
	r := Result{Case: c}
	r.Got, r.GotOutcome = binfloat.Convert(c.Input, c.From, c.To)
	if c.RoundTrip {
		r.Mid = r.Got
		r.Got, r.GotOutcome = binfloat.Convert(r.Mid, c.To, c.From)
	}
	r.Pass = r.Got == c.Want && (!c.CheckOutcome || r.GotOutcome == c.Outcome)
	return r
}

func (r Result) resultFormat() binfloat.Format {
	if r.RoundTrip {
		return r.From
	}
	return r.To
}

func (r Result) title() string {
	if r.Group == "" {
		return r.Name
	}
	return r.Group + "/" + r.Name
}

// Describe renders the result with the bits of every step.
func (r Result) Describe() string {
	var builder strings.Builder
	builder.WriteString(r.title())
	builder.WriteString(": ")
	builder.WriteString(r.From.BitString(r.Input))
	if r.RoundTrip {
		builder.WriteString(" => ")
		builder.WriteString(r.To.BitString(r.Mid))
	}
	out := r.resultFormat()
	builder.WriteString(" => ")
	builder.WriteString(out.BitString(r.Got))
	builder.WriteString(fmt.Sprintf(" (%v)", r.GotOutcome))
	if !r.Pass {
		builder.WriteString(", want ")
		builder.WriteString(out.BitString(r.Want))
		if r.CheckOutcome {
			builder.WriteString(fmt.Sprintf(" (%v)", r.Outcome))
		}
	}
	return builder.String()
}

// Run checks all cases using up to 'workers' goroutines, 0 means GOMAXPROCS.
// Results are returned in the order of cases.
func Run(ctx context.Context, cases []Case, workers int) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(workers))
	for i := range cases {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Check(cases[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize counts the results and collects failures.
func Summarize(results []Result) Report {
	var report Report
	for _, r := range results {
		report.add(r)
	}
	return report
}

func (rep *Report) add(r Result) {
	rep.Total++
	if !r.Pass {
		rep.Failed++
		rep.Failures = append(rep.Failures, r)
	}
}

// Merge adds other's counts and failures to rep.
func (rep *Report) Merge(other Report) {
	rep.Total += other.Total
	rep.Failed += other.Failed
	rep.Failures = append(rep.Failures, other.Failures...)
}

// Passed returns true if nothing failed.
func (rep Report) Passed() bool {
	return rep.Failed == 0
}

func (rep Report) String() string {
	if rep.Passed() {
		return fmt.Sprintf("PASSED (%d)", rep.Total)
	}
	return fmt.Sprintf("%d of %d FAILED", rep.Failed, rep.Total)
}

func workerCount(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
