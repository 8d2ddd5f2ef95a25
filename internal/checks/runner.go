package checks

import (
	"fmt"
	"io"
	"strings"

	"github.com/bartekus/featgov/internal/ui"
	"github.com/bartekus/featgov/pkg/gov"
)

// Runner evaluates gate rules against one snapshot.
type Runner struct {
	rules []Rule
	store *StateStore
	out   io.Writer
}

// NewRunner creates a runner over the given rules, persisting results to store
// and printing one line per rule to out.
func NewRunner(rules []Rule, store *StateStore, out io.Writer) *Runner {
	return &Runner{
		rules: rules,
		store: store,
		out:   out,
	}
}

// Run evaluates every rule in order. It keeps going past failures,
// accumulating them, and returns an error if ANY rule failed.
// State writes are best-effort.
func (r *Runner) Run(snap *gov.Snapshot) error {
	var failed []string
	ruleIDs := make([]string, 0, len(r.rules))

	for _, rule := range r.rules {
		res := rule.Evaluate(snap)
		ruleIDs = append(ruleIDs, res.Rule)

		if err := r.store.WriteRuleResult(res); err != nil {
			fmt.Fprintln(r.out, ui.Muted("state: "+err.Error()))
		}

		line := fmt.Sprintf("%s: %d observed (limit %d)", res.Rule, res.Observed, res.Limit)
		if res.Status == RulePass {
			fmt.Fprintln(r.out, ui.Pass(line))
			continue
		}

		failed = append(failed, res.Rule)
		fmt.Fprintln(r.out, ui.Fail(line))
		if res.Note != "" {
			fmt.Fprintln(r.out, "  "+ui.Muted(res.Note))
		}
	}

	last := LastRun{
		Status: "pass",
		Digest: snap.Digest,
		Rules:  ruleIDs,
		Failed: failed,
	}
	if len(failed) > 0 {
		last.Status = "fail"
	}
	if err := r.store.WriteLastRun(last); err != nil {
		fmt.Fprintln(r.out, ui.Muted("state: "+err.Error()))
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d checks failed: %s", len(failed), len(r.rules), strings.Join(failed, ", "))
	}
	return nil
}
