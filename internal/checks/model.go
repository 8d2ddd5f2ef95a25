package checks

// RuleStatus represents the outcome of a rule evaluation.
type RuleStatus string

const (
	RulePass RuleStatus = "pass"
	RuleFail RuleStatus = "fail"
)

// RuleResult represents the result of a single rule evaluation.
// Matches .featgov/checks/<rule>.json schema.
type RuleResult struct {
	Rule     string     `json:"rule"`
	Status   RuleStatus `json:"status"`
	Observed int        `json:"observed"`
	Limit    int        `json:"limit"`
	Note     string     `json:"note,omitempty"`
}

// LastRun represents the summary of the last gate run.
// Matches .featgov/last-run.json schema.
type LastRun struct {
	Status string   `json:"status"` // "pass" or "fail"
	Digest string   `json:"digest"` // Snapshot digest the gate evaluated
	Rules  []string `json:"rules"`  // Ordered list of rules evaluated
	Failed []string `json:"failed"` // List of failed rules
}
