package armfeatures

import (
	"fmt"
	"strings"
)

// String returns the human-readable report.
func (r *Report) String() string {
	var b strings.Builder

	writeHeader(&b, "Detected CPU Features")
	b.WriteString(r.Detected.String())
	b.WriteString("\n\n")

	for _, c := range r.Classifications {
		writeClassification(&b, c)
		b.WriteString("\n")
	}

	if r.Unknown.Len() == 0 {
		b.WriteString("No unknown extensions found.\n")
		return b.String()
	}
	writeHeader(&b, "Unknown Extensions")
	fmt.Fprintf(&b, "%s\n", r.Unknown)

	return b.String()
}

// String renders the table one label per line.
func (t *Table) String() string {
	var b strings.Builder
	writeHeader(&b, t.Title())
	for _, l := range t.labels {
		fmt.Fprintf(&b, "%s: %s\n", l, t.sets[l])
	}
	return b.String()
}

func writeClassification(b *strings.Builder, c Classification) {
	writeHeader(b, c.Title)
	for _, m := range c.Matches {
		fmt.Fprintf(b, "%s: %s\n", m.Label, m.Features)
	}
}

func writeHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s:\n%s\n", title, strings.Repeat("-", len(title)+1))
}
