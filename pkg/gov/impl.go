package gov

import (
	"sort"
	"strings"

	"github.com/bartekus/featgov/internal/gherkin"
)

// implTags extracts the implementation-linkage tags from a resolved tag set.
func implTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if strings.HasPrefix(tag, gherkin.ImplTagPrefix) {
			out = append(out, tag)
		}
	}
	return out
}

// implAuditor accumulates per-tag rosters while scenarios stream through.
// One auditor lives for exactly one snapshot build.
type implAuditor struct {
	byTag        map[string]*ImplSummary
	missingReady []ScenarioRef
}

func newImplAuditor() *implAuditor {
	return &implAuditor{byTag: make(map[string]*ImplSummary)}
}

func (a *implAuditor) visit(row ScenarioRow) {
	ref := ScenarioRef{
		FilePath:     row.FilePath,
		ScenarioName: row.ScenarioName,
		Status:       row.Status,
	}

	for _, tag := range row.ImplTags {
		sum, ok := a.byTag[tag]
		if !ok {
			sum = &ImplSummary{Tag: tag}
			a.byTag[tag] = sum
		}
		sum.Counts.Add(row.Status)
		sum.Scenarios = append(sum.Scenarios, ref)
	}

	if row.Status == StatusReady && len(row.ImplTags) == 0 {
		a.missingReady = append(a.missingReady, ref)
	}
}

func (a *implAuditor) result() ImplAudit {
	tags := make([]ImplSummary, 0, len(a.byTag))
	for _, sum := range a.byTag {
		tags = append(tags, *sum)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Tag < tags[j].Tag })

	missing := a.missingReady
	if missing == nil {
		missing = []ScenarioRef{}
	}

	return ImplAudit{
		ImplTagsTotal:         len(tags),
		Tags:                  tags,
		MissingReadyImplCount: len(missing),
		MissingReadyImpl:      missing,
	}
}
