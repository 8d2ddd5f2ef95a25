// SPDX-License-Identifier: AGPL-3.0-or-later
package gov

import "github.com/bartekus/featgov/internal/gherkin"

// Status is a scenario's derived delivery status.
type Status string

const (
	StatusReady  Status = "ready"
	StatusWip    Status = "wip"
	StatusManual Status = "manual"
	StatusSkip   Status = "skip"
	StatusOther  Status = "other"
)

// Classify derives exactly one status from a resolved tag set.
// Precedence, first match wins: skip, manual, ready, wip; other when none
// of the four status tags is present.
func Classify(tags []string) Status {
	has := func(want string) bool {
		for _, tag := range tags {
			if tag == want {
				return true
			}
		}
		return false
	}

	switch {
	case has(gherkin.TagSkip):
		return StatusSkip
	case has(gherkin.TagManual):
		return StatusManual
	case has(gherkin.TagReady):
		return StatusReady
	case has(gherkin.TagWip):
		return StatusWip
	}
	return StatusOther
}

// StatusCounts tallies scenarios per status category. Total always equals
// the sum of the five categories; counts only ever increment.
type StatusCounts struct {
	Total  int `json:"total"`
	Ready  int `json:"ready"`
	Wip    int `json:"wip"`
	Manual int `json:"manual"`
	Skip   int `json:"skip"`
	Other  int `json:"other"`
}

// Add records one scenario with the given status.
func (c *StatusCounts) Add(status Status) {
	c.Total++
	switch status {
	case StatusReady:
		c.Ready++
	case StatusWip:
		c.Wip++
	case StatusManual:
		c.Manual++
	case StatusSkip:
		c.Skip++
	default:
		c.Other++
	}
}
