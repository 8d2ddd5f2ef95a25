// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report projects governance snapshots into markdown artifacts.
package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bartekus/featgov/pkg/gov"
)

var countHeaders = []string{"Total", "Ready", "WIP", "Manual", "Skip", "Other"}

// Render turns a snapshot into one markdown document. Rendering is pure and
// relies on the snapshot's own ordering: equal snapshots produce
// byte-identical documents.
func Render(snap *gov.Snapshot) []byte {
	var b strings.Builder

	b.WriteString(renderHeader(1, "BDD Governance"))
	b.WriteString(fmt.Sprintf("- **Generated**: %s\n", snap.GeneratedAt.UTC().Format(time.RFC3339)))
	b.WriteString(fmt.Sprintf("- **Digest**: `%s`\n", snap.Digest))
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Overall"))
	b.WriteString(renderTable(countHeaders, [][]string{countCells(snap.Overall)}))
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Apps"))
	if len(snap.Apps) == 0 {
		b.WriteString("None.\n")
	} else {
		rows := make([][]string, 0, len(snap.Apps))
		for _, app := range snap.Apps {
			rows = append(rows, append([]string{app.Name}, countCells(app.StatusCounts)...))
		}
		b.WriteString(renderTable(append([]string{"App"}, countHeaders...), rows))
	}
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Features"))
	if len(snap.Features) == 0 {
		b.WriteString("None.\n")
	} else {
		rows := make([][]string, 0, len(snap.Features))
		for _, f := range snap.Features {
			rows = append(rows, append([]string{f.AppName, f.FeatureName, "`" + f.FilePath + "`"}, countCells(f.Counts)...))
		}
		b.WriteString(renderTable(append([]string{"App", "Feature", "File"}, countHeaders...), rows))
	}
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Missing Status"))
	if len(snap.MissingStatus) == 0 {
		b.WriteString("None.\n")
	} else {
		rows := make([][]string, 0, len(snap.MissingStatus))
		for _, issue := range snap.MissingStatus {
			rows = append(rows, []string{"`" + issue.FilePath + "`", issue.ScenarioName, strings.Join(issue.Tags, " ")})
		}
		b.WriteString(renderTable([]string{"File", "Scenario", "Tags"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Conflicting Status"))
	if len(snap.ConflictingStatus) == 0 {
		b.WriteString("None.\n")
	} else {
		rows := make([][]string, 0, len(snap.ConflictingStatus))
		for _, issue := range snap.ConflictingStatus {
			rows = append(rows, []string{"`" + issue.FilePath + "`", issue.ScenarioName, strings.Join(issue.ConflictingTags, " ")})
		}
		b.WriteString(renderTable([]string{"File", "Scenario", "Conflicting Tags"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(renderHeader(2, "Implementation Audit"))
	b.WriteString(fmt.Sprintf("- **Linked tags**: %d\n", snap.ImplAudit.ImplTagsTotal))
	b.WriteString(fmt.Sprintf("- **Ready without implementation**: %d\n", snap.ImplAudit.MissingReadyImplCount))
	b.WriteString("\n")

	b.WriteString(renderHeader(3, "Tags"))
	if len(snap.ImplAudit.Tags) == 0 {
		b.WriteString("None.\n")
	} else {
		rows := make([][]string, 0, len(snap.ImplAudit.Tags))
		for _, sum := range snap.ImplAudit.Tags {
			rows = append(rows, append([]string{"`" + sum.Tag + "`"}, countCells(sum.Counts)...))
		}
		b.WriteString(renderTable(append([]string{"Tag"}, countHeaders...), rows))
	}
	b.WriteString("\n")

	b.WriteString(renderHeader(3, "Ready Without Implementation"))
	if len(snap.ImplAudit.MissingReadyImpl) == 0 {
		b.WriteString("None.\n")
	} else {
		items := make([]string, 0, len(snap.ImplAudit.MissingReadyImpl))
		for _, ref := range snap.ImplAudit.MissingReadyImpl {
			items = append(items, fmt.Sprintf("%s (`%s`)", ref.ScenarioName, ref.FilePath))
		}
		b.WriteString(renderList(items))
	}

	return []byte(b.String())
}

func countCells(c gov.StatusCounts) []string {
	return []string{
		strconv.Itoa(c.Total),
		strconv.Itoa(c.Ready),
		strconv.Itoa(c.Wip),
		strconv.Itoa(c.Manual),
		strconv.Itoa(c.Skip),
		strconv.Itoa(c.Other),
	}
}

func renderHeader(level int, text string) string {
	return fmt.Sprintf("%s %s\n\n", strings.Repeat("#", level), text)
}

// renderTable renders a markdown table. Rows arrive pre-sorted; the table
// renders them as given.
func renderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|")
	for range headers {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	return b.String()
}

func renderList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	return b.String()
}
