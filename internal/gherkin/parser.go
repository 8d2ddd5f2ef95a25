// Package gherkin extracts tags and structure from .feature files.
//
// This is not a grammar for the full language. Governance only needs tags and
// the Feature/Scenario declarations they attach to, so the parser is a single
// forward pass over lines with two tag accumulators and nothing else. Steps,
// tables, docstrings and everything in between are opaque.
package gherkin

import "strings"

// Document is one parsed specification file.
type Document struct {
	Name      string
	Tags      []string
	Scenarios []Scenario
}

// Scenario is one Scenario or Scenario Outline declaration.
type Scenario struct {
	Name string

	// Tags is the resolved effective tag set: non-status tags inherited
	// from both the feature and the scenario scope, plus the effective
	// primary status tags, deduplicated in first-seen order.
	Tags []string

	// FeaturePrimary and ScenarioPrimary are the status tags observed at
	// each scope, in vocabulary order. Scenario-level tags override the
	// feature level as a whole set, never tag by tag; downstream conflict
	// detection needs both sets to tell those cases apart.
	FeaturePrimary  []string
	ScenarioPrimary []string
}

// PlaceholderName stands in for empty Feature or Scenario names.
const PlaceholderName = "(unnamed)"

const (
	kwFeature  = "feature:"
	kwScenario = "scenario:"
	kwOutline  = "scenario outline:"
)

// Parse scans content line by line. Tag lines accumulate into a pending set
// that binds to the next Feature or Scenario declaration; comments and blank
// lines leave the pending set alone, any other line clears it.
func Parse(content string) Document {
	var (
		doc         Document
		pendingTags []string
		featureTags []string
	)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "@") {
			for _, tok := range strings.Fields(trimmed) {
				if strings.HasPrefix(tok, "@") {
					pendingTags = append(pendingTags, tok)
				}
			}
			continue
		}

		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, kwOutline):
			doc.Scenarios = append(doc.Scenarios, newScenario(declName(trimmed, kwOutline), featureTags, pendingTags))
			pendingTags = nil

		case strings.HasPrefix(lower, kwScenario):
			doc.Scenarios = append(doc.Scenarios, newScenario(declName(trimmed, kwScenario), featureTags, pendingTags))
			pendingTags = nil

		case strings.HasPrefix(lower, kwFeature):
			doc.Name = declName(trimmed, kwFeature)
			doc.Tags = pendingTags
			featureTags = pendingTags
			pendingTags = nil

		default:
			// A step or prose line. Tags only attach to the declaration
			// immediately following them.
			pendingTags = nil
		}
	}

	return doc
}

func declName(line, keyword string) string {
	name := strings.TrimSpace(line[len(keyword):])
	if name == "" {
		return PlaceholderName
	}
	return name
}

func newScenario(name string, featureTags, pendingTags []string) Scenario {
	scn := Scenario{
		Name:            name,
		FeaturePrimary:  statusSubset(featureTags),
		ScenarioPrimary: statusSubset(pendingTags),
	}

	effective := scn.ScenarioPrimary
	if len(effective) == 0 {
		effective = scn.FeaturePrimary
	}

	seen := make(map[string]struct{})
	add := func(tag string) {
		if _, dup := seen[tag]; dup {
			return
		}
		seen[tag] = struct{}{}
		scn.Tags = append(scn.Tags, tag)
	}
	for _, tag := range featureTags {
		if !IsStatusTag(tag) {
			add(tag)
		}
	}
	for _, tag := range pendingTags {
		if !IsStatusTag(tag) {
			add(tag)
		}
	}
	for _, tag := range effective {
		add(tag)
	}
	return scn
}

// statusSubset intersects tags with the status vocabulary, in vocabulary
// order, one entry per status.
func statusSubset(tags []string) []string {
	var out []string
	for _, status := range StatusTags() {
		for _, tag := range tags {
			if tag == status {
				out = append(out, status)
				break
			}
		}
	}
	return out
}
