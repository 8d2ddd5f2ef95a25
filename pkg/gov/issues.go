package gov

import "github.com/bartekus/featgov/internal/gherkin"

// detectConflict reports an ambiguous status: more than one status tag at the
// scenario level, or, when the scenario level is empty, more than one
// inherited from the feature level. At most one branch fires per scenario.
func detectConflict(row ScenarioRow) (ConflictingStatusIssue, bool) {
	var conflicting []string
	switch {
	case len(row.ScenarioPrimary) > 1:
		conflicting = row.ScenarioPrimary
	case len(row.ScenarioPrimary) == 0 && len(row.FeaturePrimary) > 1:
		conflicting = row.FeaturePrimary
	default:
		return ConflictingStatusIssue{}, false
	}

	return ConflictingStatusIssue{
		FilePath:        row.FilePath,
		ScenarioName:    row.ScenarioName,
		Tags:            row.Tags,
		ConflictingTags: conflicting,
	}, true
}

// detectMissingStatus reports a scenario whose resolved tag set carries none
// of the status tags. A lone skip counts as a deliberate status, not a gap.
func detectMissingStatus(row ScenarioRow) (MissingStatusIssue, bool) {
	for _, tag := range row.Tags {
		if gherkin.IsStatusTag(tag) {
			return MissingStatusIssue{}, false
		}
	}
	return MissingStatusIssue{
		FilePath:     row.FilePath,
		ScenarioName: row.ScenarioName,
		Tags:         row.Tags,
	}, true
}
