package checks

import (
	"fmt"

	"github.com/bartekus/featgov/internal/config"
	"github.com/bartekus/featgov/pkg/gov"
)

// Rule defines one governance gate over a snapshot.
type Rule interface {
	// ID returns the unique identifier (e.g. "missing-status").
	ID() string

	// Evaluate inspects the snapshot and reports pass or fail.
	Evaluate(snap *gov.Snapshot) RuleResult
}

// thresholdRule fails when an observed count exceeds its limit.
type thresholdRule struct {
	id      string
	limit   int
	observe func(*gov.Snapshot) int
	note    func(*gov.Snapshot) string
}

func (r *thresholdRule) ID() string { return r.id }

func (r *thresholdRule) Evaluate(snap *gov.Snapshot) RuleResult {
	observed := r.observe(snap)
	res := RuleResult{Rule: r.id, Status: RulePass, Observed: observed, Limit: r.limit}
	if observed > r.limit {
		res.Status = RuleFail
		res.Note = r.note(snap)
	}
	return res
}

// NewMissingStatusRule gates scenarios that carry no status tag.
func NewMissingStatusRule(limit int) Rule {
	return &thresholdRule{
		id:    "missing-status",
		limit: limit,
		observe: func(snap *gov.Snapshot) int {
			return len(snap.MissingStatus)
		},
		note: func(snap *gov.Snapshot) string {
			if len(snap.MissingStatus) == 0 {
				return ""
			}
			first := snap.MissingStatus[0]
			return fmt.Sprintf("first: %s (%s)", first.ScenarioName, first.FilePath)
		},
	}
}

// NewConflictingStatusRule gates scenarios declaring more than one status.
func NewConflictingStatusRule(limit int) Rule {
	return &thresholdRule{
		id:    "conflicting-status",
		limit: limit,
		observe: func(snap *gov.Snapshot) int {
			return len(snap.ConflictingStatus)
		},
		note: func(snap *gov.Snapshot) string {
			if len(snap.ConflictingStatus) == 0 {
				return ""
			}
			first := snap.ConflictingStatus[0]
			return fmt.Sprintf("first: %s (%s)", first.ScenarioName, first.FilePath)
		},
	}
}

// NewReadyUnlinkedRule gates ready scenarios without an implementation tag.
func NewReadyUnlinkedRule(limit int) Rule {
	return &thresholdRule{
		id:    "ready-unlinked",
		limit: limit,
		observe: func(snap *gov.Snapshot) int {
			return snap.ImplAudit.MissingReadyImplCount
		},
		note: func(snap *gov.Snapshot) string {
			if len(snap.ImplAudit.MissingReadyImpl) == 0 {
				return ""
			}
			first := snap.ImplAudit.MissingReadyImpl[0]
			return fmt.Sprintf("first: %s (%s)", first.ScenarioName, first.FilePath)
		},
	}
}

// RulesFromConfig builds the standard rule set with the configured limits.
func RulesFromConfig(cc config.CheckConfig) []Rule {
	return []Rule{
		NewMissingStatusRule(cc.MaxMissingStatus),
		NewConflictingStatusRule(cc.MaxConflicts),
		NewReadyUnlinkedRule(cc.MaxReadyUnlinked),
	}
}
