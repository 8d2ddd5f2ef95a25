package gov

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflict(t *testing.T) {
	tests := []struct {
		name            string
		row             ScenarioRow
		wantConflicting []string
	}{
		{
			name: "single scenario status is clean",
			row:  ScenarioRow{ScenarioPrimary: []string{"@ready"}},
		},
		{
			name:            "two scenario statuses conflict",
			row:             ScenarioRow{ScenarioPrimary: []string{"@ready", "@wip"}},
			wantConflicting: []string{"@ready", "@wip"},
		},
		{
			name:            "inherited ambiguous feature statuses conflict",
			row:             ScenarioRow{FeaturePrimary: []string{"@ready", "@wip"}},
			wantConflicting: []string{"@ready", "@wip"},
		},
		{
			name: "scenario status masks ambiguous feature statuses",
			row: ScenarioRow{
				FeaturePrimary:  []string{"@ready", "@wip"},
				ScenarioPrimary: []string{"@manual"},
			},
		},
		{
			name: "no statuses anywhere is not a conflict",
			row:  ScenarioRow{Tags: []string{"@slow"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issue, ok := detectConflict(tt.row)
			if tt.wantConflicting == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantConflicting, issue.ConflictingTags)
		})
	}
}

func TestDetectConflictCarriesContext(t *testing.T) {
	row := ScenarioRow{
		FilePath:        "apps/web/features/pay.feature",
		ScenarioName:    "Pay twice",
		Tags:            []string{"@slow", "@ready"},
		ScenarioPrimary: []string{"@ready", "@wip"},
	}
	issue, ok := detectConflict(row)
	require.True(t, ok)
	assert.Equal(t, row.FilePath, issue.FilePath)
	assert.Equal(t, row.ScenarioName, issue.ScenarioName)
	assert.Equal(t, row.Tags, issue.Tags)
}

func TestDetectMissingStatus(t *testing.T) {
	tests := []struct {
		name    string
		tags    []string
		missing bool
	}{
		{name: "no tags at all", tags: nil, missing: true},
		{name: "only metadata", tags: []string{"@slow", "@impl_pay"}, missing: true},
		{name: "ready present", tags: []string{"@ready"}, missing: false},
		{name: "wip present", tags: []string{"@wip"}, missing: false},
		{name: "manual present", tags: []string{"@manual"}, missing: false},
		{name: "lone skip is deliberate", tags: []string{"@skip"}, missing: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := detectMissingStatus(ScenarioRow{Tags: tt.tags})
			assert.Equal(t, tt.missing, got)
		})
	}
}
