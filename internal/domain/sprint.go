package domain

import (
	"strings"
	"time"
)

// Group is one team's throughput record within a sprint: the points it
// completed and the working days it spent completing them. Groups are
// plain values; equality is field equality.
type Group struct {
	Label  string
	Points int
	Days   int
}

// Sprint is one recorded sprint, keyed by its week-aligned date.
// A sprint with no groups is valid and contributes nothing to any ratio.
type Sprint struct {
	Date   time.Time
	Groups []Group
}

// NormalizeLabel canonicalizes a group label: lowercase, with spaces and
// hyphens replaced by underscores. Normalization happens at the input
// boundary; the calculation core assumes labels are already canonical.
func NormalizeLabel(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, " ", "_")
	return strings.ReplaceAll(label, "-", "_")
}
