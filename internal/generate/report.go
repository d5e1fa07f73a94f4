package generate

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/klauern/rulegen/internal/model"
)

// Report is the outcome of a generation run.
type Report struct {
	// Source is the input the rules came from.
	Source string

	// Rules are the parsed rules.
	Rules []model.Rule

	// Results holds one entry per formatter attempt, in formatter then rule
	// order.
	Results []model.Result

	// Dump holds the results of the flat rule dump, if it ran.
	Dump []model.Result

	// Unknown lists format ids that were requested but not registered.
	Unknown []string

	// Collisions lists fixed paths written by more than one rule.
	Collisions []Collision
}

// Succeeded returns results that wrote a file.
func (r *Report) Succeeded() []model.Result {
	return r.filter(true)
}

// Failed returns results that did not write a file.
func (r *Report) Failed() []model.Result {
	return r.filter(false)
}

func (r *Report) filter(success bool) []model.Result {
	var out []model.Result
	for _, res := range r.all() {
		if res.Success == success {
			out = append(out, res)
		}
	}
	return out
}

func (r *Report) all() []model.Result {
	out := make([]model.Result, 0, len(r.Dump)+len(r.Results))
	out = append(out, r.Dump...)
	return append(out, r.Results...)
}

// Success returns true when no attempt failed.
func (r *Report) Success() bool {
	return len(r.Failed()) == 0
}

// TotalBytes returns the number of bytes written.
func (r *Report) TotalBytes() int {
	total := 0
	for _, res := range r.all() {
		total += res.Bytes
	}
	return total
}

// FormatCount is the per-format tally of a run.
type FormatCount struct {
	FormatID  string
	Succeeded int
	Failed    int
	Bytes     int
}

// ByFormat tallies results per format id in first-seen order.
func (r *Report) ByFormat() []FormatCount {
	var counts []FormatCount
	index := make(map[string]int)
	for _, res := range r.all() {
		i, ok := index[res.FormatID]
		if !ok {
			i = len(counts)
			index[res.FormatID] = i
			counts = append(counts, FormatCount{FormatID: res.FormatID})
		}
		if res.Success {
			counts[i].Succeeded++
			counts[i].Bytes += res.Bytes
		} else {
			counts[i].Failed++
		}
	}
	return counts
}

// Summary returns a human-readable summary. Verbose adds the per-format
// breakdown.
func (r *Report) Summary(verbose bool) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generated %d file(s) from %d rule(s) (%s)\n",
		len(r.Succeeded()), len(r.Rules), humanize.Bytes(uint64(max(0, r.TotalBytes())))) //nolint:gosec // Uses max.
	fmt.Fprintf(&sb, "  Succeeded: %d\n", len(r.Succeeded()))
	fmt.Fprintf(&sb, "  Failed:    %d\n", len(r.Failed()))

	if len(r.Unknown) > 0 {
		fmt.Fprintf(&sb, "  Unknown formats: %s\n", strings.Join(r.Unknown, ", "))
	}

	if verbose {
		sb.WriteString("\nBy format:\n")
		for _, c := range r.ByFormat() {
			fmt.Fprintf(&sb, "  %-16s %d ok, %d failed, %s\n",
				c.FormatID, c.Succeeded, c.Failed, humanize.Bytes(uint64(max(0, c.Bytes)))) //nolint:gosec // Uses max.
		}
	}

	if len(r.Collisions) > 0 {
		sb.WriteString("\nShared output files:\n")
		for _, c := range r.Collisions {
			fmt.Fprintf(&sb, "  - [%s] %s: %s; %s\n", c.FormatID, c.Path, strings.Join(c.Rules, ", "), c.Outcome())
		}
	}

	if failed := r.Failed(); len(failed) > 0 {
		sb.WriteString("\nErrors:\n")
		for _, f := range failed {
			fmt.Fprintf(&sb, "  - [%s] %s: %s\n", f.FormatID, f.RuleName, f.ErrorMessage())
		}
	}

	return sb.String()
}
