// SPDX-License-Identifier: AGPL-3.0-or-later
package gov

import "time"

// ScenarioRow is one parsed scenario with its resolved governance facts.
// Rows are created once during the scan and never mutated afterwards.
type ScenarioRow struct {
	FilePath     string   `json:"filePath"`
	FeatureName  string   `json:"featureName"`
	ScenarioName string   `json:"scenarioName"`
	Tags         []string `json:"tags"`
	Status       Status   `json:"status"`
	ImplTags     []string `json:"implTags"`

	// Scope-level status tag sets. Conflict detection needs both after
	// parsing, but they carry no meaning for snapshot consumers.
	FeaturePrimary  []string `json:"-"`
	ScenarioPrimary []string `json:"-"`
}

// FeatureRow is one parsed specification file.
type FeatureRow struct {
	AppName     string        `json:"appName"`
	FilePath    string        `json:"filePath"`
	FeatureName string        `json:"featureName"`
	FeatureTags []string      `json:"featureTags"`
	Counts      StatusCounts  `json:"counts"`
	Scenarios   []ScenarioRow `json:"scenarios"`
}

// AppCounts is the per-app status rollup.
type AppCounts struct {
	Name string `json:"name"`
	StatusCounts
}

// MissingStatusIssue flags a scenario with no resolvable delivery status.
type MissingStatusIssue struct {
	FilePath     string   `json:"filePath"`
	ScenarioName string   `json:"scenarioName"`
	Tags         []string `json:"tags"`
}

// ConflictingStatusIssue flags a scenario whose status tags contradict each
// other, either on the scenario itself or inherited from its feature.
type ConflictingStatusIssue struct {
	FilePath        string   `json:"filePath"`
	ScenarioName    string   `json:"scenarioName"`
	Tags            []string `json:"tags"`
	ConflictingTags []string `json:"conflictingTags"`
}

// ScenarioRef points at a scenario from the implementation audit.
type ScenarioRef struct {
	FilePath     string `json:"filePath"`
	ScenarioName string `json:"scenarioName"`
	Status       Status `json:"status"`
}

// ImplSummary aggregates every scenario carrying one implementation tag.
type ImplSummary struct {
	Tag       string        `json:"tag"`
	Counts    StatusCounts  `json:"counts"`
	Scenarios []ScenarioRef `json:"scenarios"`
}

// ImplAudit cross-references implementation tags against readiness. The
// missingReadyImpl list is the actionable part: scenarios marked ready for
// delivery with no traceable implementation tag.
type ImplAudit struct {
	ImplTagsTotal         int           `json:"implTagsTotal"`
	Tags                  []ImplSummary `json:"tags"`
	MissingReadyImplCount int           `json:"missingReadyImplCount"`
	MissingReadyImpl      []ScenarioRef `json:"missingReadyImpl"`
}

// Snapshot is the aggregated, point-in-time governance report. It is a pure
// value: no identity, no mutation after construction, safe to serialize
// directly. All file paths are relative to the resolved repo root with
// forward slashes, so snapshots compare across machines.
type Snapshot struct {
	GeneratedAt       time.Time                `json:"generatedAt"`
	Digest            string                   `json:"digest"`
	Overall           StatusCounts             `json:"overall"`
	Apps              []AppCounts              `json:"apps"`
	Features          []FeatureRow             `json:"features"`
	MissingStatus     []MissingStatusIssue     `json:"missingStatus"`
	ConflictingStatus []ConflictingStatusIssue `json:"conflictingStatus"`
	ImplAudit         ImplAudit                `json:"implAudit"`
}
