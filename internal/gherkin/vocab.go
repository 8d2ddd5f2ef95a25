// SPDX-License-Identifier: AGPL-3.0-or-later
package gherkin

// The four primary status tags. Their presence on a feature or scenario
// determines delivery status; every other tag is opaque metadata.
const (
	TagReady  = "@ready"
	TagWip    = "@wip"
	TagManual = "@manual"
	TagSkip   = "@skip"
)

// ImplTagPrefix marks implementation-linkage tags (@impl_<identifier>),
// used to associate a scenario with a unit of implementation work.
const ImplTagPrefix = "@impl_"

// FileExtension is the specification file extension.
const FileExtension = ".feature"

// StatusTags returns the primary status tags in presentation order.
func StatusTags() []string {
	return []string{TagReady, TagWip, TagManual, TagSkip}
}

// IsStatusTag reports whether tag is one of the four primary status tags.
func IsStatusTag(tag string) bool {
	switch tag {
	case TagReady, TagWip, TagManual, TagSkip:
		return true
	}
	return false
}
