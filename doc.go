// Package armfeatures reports which ARM64 architecture extensions and
// processor families a running CPU supports.
//
// It reads the feature tokens the kernel exposes in /proc/cpuinfo,
// matches them against static reference tables, and renders a report of
// which generations and processor families the tokens belong to, together
// with any tokens none of the tables know about.
//
// # Quick Report
//
//	r, err := armfeatures.Detect()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(r) // human-readable summary
//
// # Selecting Tables and Sources
//
// Classify against both the architecture-version and the processor tables,
// reading the feature tokens from the auxiliary vector instead of procfs:
//
//	r, err := armfeatures.Detect(
//	    armfeatures.WithSource(armfeatures.SourceHWCAP),
//	    armfeatures.WithProcessorTable(),
//	)
//
// # Types
//
// [FeatureSet] is an insertion-ordered set of feature tokens.
//
// [Table] maps labels (an architecture revision such as "ARMv8.2", or a
// processor family such as "Neoverse-N1") to the tokens associated with them.
// Tables are immutable once built with [NewTable].
//
// [Classification] holds the non-empty intersections of a detected
// [FeatureSet] with each label of a [Table], in table order.
//
// [Report] aggregates the detected tokens, one [Classification] per table
// and the unknown tokens.
//
// # Table Issues
//
// [Lint] checks reference tables for tokens the arm64 kernel never prints
// and for tokens claimed by more than one generation.
// The shipped [ArchVersions] table keeps two such spellings ("jsvt" and
// "svesh3") as they were recorded; Lint reports them with a suggested
// replacement.
package armfeatures
