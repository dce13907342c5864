package armfeatures

import (
	"fmt"
	"slices"

	"github.com/agnivade/levenshtein"
)

// kernelFeatureNames lists the tokens the arm64 kernel prints on the
// Features line of /proc/cpuinfo (arch/arm64/kernel/cpuinfo.c, hwcap_str).
var kernelFeatureNames = NewFeatureSet(
	// HWCAP
	"fp", "asimd", "evtstrm", "aes", "pmull", "sha1", "sha2", "crc32",
	"atomics", "fphp", "asimdhp", "cpuid", "asimdrdm", "jscvt", "fcma", "lrcpc",
	"dcpop", "sha3", "sm3", "sm4", "asimddp", "sha512", "sve", "asimdfhm",
	"dit", "uscat", "ilrcpc", "flagm", "ssbs", "sb", "paca", "pacg",
	// HWCAP2
	"dcpodp", "sve2", "sveaes", "svepmull", "svebitperm", "svesha3", "svesm4", "flagm2",
	"frint", "svei8mm", "svef32mm", "svef64mm", "svebf16", "i8mm", "bf16", "dgh",
	"rng", "bti", "mte", "ecv", "afp", "rpres", "mte3", "sme",
	"smei16i64", "smef64f64", "smei8i32", "smef16f32", "smeb16f32", "smef32f32", "smefa64", "wfxt",
	"ebf16", "sveebf16", "cssc", "rprfm", "sve2p1", "sme2", "sme2p1", "smei16i32",
	"smebi32i32", "smeb16b16", "smef16f16", "mops", "hbc", "sveb16b16", "lrcpc3", "lse128",
	"fpmr", "lut", "faminmax", "f8cvt", "f8fma", "f8dp4", "f8dp2", "f8e4m3",
	"f8e5m2", "smelutv2", "smef8f16", "smef8f32", "smesf8fma", "smesf8dp4", "smesf8dp2",
	// HWCAP3
	"poe",
)

// IsKernelFeature reports whether the arm64 kernel can print name on a Features line.
func IsKernelFeature(name string) bool {
	return kernelFeatureNames.Has(name)
}

// maxSuggestionDistance bounds the edit distance of a suggested replacement.
const maxSuggestionDistance = 2

// IssueKind classifies a table [Issue].
type IssueKind int

const (
	// IssueNotKernelFeature marks a token the kernel never prints.
	IssueNotKernelFeature IssueKind = iota
	// IssueRepeatedToken marks a token listed more than once under a label,
	// or, in a [Generations] table, under more than one label.
	IssueRepeatedToken
)

func (k IssueKind) String() string {
	switch k {
	case IssueNotKernelFeature:
		return "not-kernel-feature"
	case IssueRepeatedToken:
		return "repeated-token"
	default:
		return fmt.Sprintf("IssueKind(%d)", k)
	}
}

// MarshalText encodes the kind by name.
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is a suspicious token in a reference table.
type Issue struct {
	Kind  IssueKind `json:"kind"`
	Table string    `json:"table"`
	Label string    `json:"label"`
	Token string    `json:"token"`
	// Suggestion is the closest kernel token, if one is near enough.
	Suggestion string `json:"suggestion,omitempty"`
	// Others lists the other labels claiming the same token.
	Others []string `json:"others,omitempty"`
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueNotKernelFeature:
		if i.Suggestion != "" {
			return fmt.Sprintf("%s/%s: %q is not a kernel feature name (did you mean %q?)", i.Table, i.Label, i.Token, i.Suggestion)
		}
		return fmt.Sprintf("%s/%s: %q is not a kernel feature name", i.Table, i.Label, i.Token)
	case IssueRepeatedToken:
		if len(i.Others) > 0 {
			return fmt.Sprintf("%s/%s: %q is also listed under %v", i.Table, i.Label, i.Token, i.Others)
		}
		return fmt.Sprintf("%s/%s: %q is listed more than once", i.Table, i.Label, i.Token)
	default:
		return fmt.Sprintf("%s/%s: %q: %s", i.Table, i.Label, i.Token, i.Kind)
	}
}

// Lint checks tables for tokens the kernel never prints and for repeated tokens.
// Issues are returned in table order, then label order, then token order.
func Lint(tables ...*Table) []Issue {
	var issues []Issue
	for _, t := range tables {
		issues = append(issues, lintTable(t)...)
	}
	return issues
}

func lintTable(t *Table) []Issue {
	var issues []Issue

	owners := make(map[string][]string)
	for _, l := range t.labels {
		for _, tok := range t.sets[l].Names() {
			owners[tok] = append(owners[tok], l)
		}
	}

	for _, l := range t.labels {
		seen := make(map[string]struct{}, len(t.raw[l]))
		for _, tok := range t.raw[l] {
			if _, dup := seen[tok]; dup {
				issues = append(issues, Issue{Kind: IssueRepeatedToken, Table: t.name, Label: l, Token: tok})
				continue
			}
			seen[tok] = struct{}{}

			if !IsKernelFeature(tok) {
				issues = append(issues, Issue{
					Kind:       IssueNotKernelFeature,
					Table:      t.name,
					Label:      l,
					Token:      tok,
					Suggestion: suggestKernelFeature(tok),
				})
			}

			if t.kind == Generations && len(owners[tok]) > 1 {
				others := slices.DeleteFunc(slices.Clone(owners[tok]), func(o string) bool { return o == l })
				issues = append(issues, Issue{Kind: IssueRepeatedToken, Table: t.name, Label: l, Token: tok, Others: others})
			}
		}
	}
	return issues
}

// suggestKernelFeature returns the kernel token closest to name,
// or "" if none is within maxSuggestionDistance.
// Ties go to the first token in kernel order.
func suggestKernelFeature(name string) string {
	best, bestDist := "", maxSuggestionDistance+1
	for _, k := range kernelFeatureNames.Names() {
		if d := levenshtein.ComputeDistance(name, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
