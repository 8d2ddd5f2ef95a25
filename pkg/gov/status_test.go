package gov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want Status
	}{
		{name: "no tags", tags: nil, want: StatusOther},
		{name: "only metadata tags", tags: []string{"@slow", "@impl_pay"}, want: StatusOther},
		{name: "ready", tags: []string{"@ready"}, want: StatusReady},
		{name: "wip", tags: []string{"@wip"}, want: StatusWip},
		{name: "manual", tags: []string{"@manual"}, want: StatusManual},
		{name: "skip", tags: []string{"@skip"}, want: StatusSkip},
		{name: "skip beats everything", tags: []string{"@ready", "@manual", "@skip", "@wip"}, want: StatusSkip},
		{name: "manual beats ready", tags: []string{"@ready", "@manual"}, want: StatusManual},
		{name: "ready beats wip", tags: []string{"@wip", "@ready"}, want: StatusReady},
		{name: "case sensitive", tags: []string{"@Ready"}, want: StatusOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tags))
		})
	}
}

func TestStatusCountsAdd(t *testing.T) {
	var c StatusCounts
	for _, s := range []Status{StatusReady, StatusReady, StatusWip, StatusManual, StatusSkip, StatusOther, Status("bogus")} {
		c.Add(s)
	}

	assert.Equal(t, 7, c.Total)
	assert.Equal(t, 2, c.Ready)
	assert.Equal(t, 1, c.Wip)
	assert.Equal(t, 1, c.Manual)
	assert.Equal(t, 1, c.Skip)
	// Unknown statuses land in Other; the invariant must hold regardless.
	assert.Equal(t, 2, c.Other)
	assertCountsInvariant(t, c)
}

func assertCountsInvariant(t *testing.T, c StatusCounts) {
	t.Helper()
	assert.Equal(t, c.Total, c.Ready+c.Wip+c.Manual+c.Skip+c.Other,
		"total must equal the sum of the five categories")
}
