package armfeatures

import (
	"slices"
	"strings"
	"testing"
)

func TestLint_ArchVersions(t *testing.T) {
	issues := Lint(ArchVersions)

	want := []Issue{
		{Kind: IssueNotKernelFeature, Table: "armv", Label: "ARMv8.3", Token: "jsvt", Suggestion: "jscvt"},
		{Kind: IssueNotKernelFeature, Table: "armv", Label: "ARMv9.0", Token: "svesh3", Suggestion: "svesha3"},
	}
	if len(issues) != len(want) {
		t.Fatalf("Lint() = %v, want %d issues", issues, len(want))
	}
	for i := range want {
		got := issues[i]
		if got.Kind != want[i].Kind || got.Table != want[i].Table || got.Label != want[i].Label ||
			got.Token != want[i].Token || got.Suggestion != want[i].Suggestion {
			t.Errorf("issue[%d] = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestLint_Processors(t *testing.T) {
	if issues := Lint(Processors); len(issues) != 0 {
		t.Errorf("Lint(Processors) = %v, want none", issues)
	}
}

func TestLint_RepeatedTokens(t *testing.T) {
	gen := NewTable("gen", "Gen", Generations,
		Entry{"v1", []string{"fp", "aes", "fp"}},
		Entry{"v2", []string{"aes"}},
	)
	fam := NewTable("fam", "Fam", Families,
		Entry{"a", []string{"fp", "aes"}},
		Entry{"b", []string{"fp", "aes"}},
	)

	issues := Lint(gen, fam)

	var got []string
	for _, i := range issues {
		got = append(got, i.String())
	}
	want := []string{
		`gen/v1: "aes" is also listed under [v2]`,
		`gen/v1: "fp" is listed more than once`,
		`gen/v2: "aes" is also listed under [v1]`,
	}
	if !slices.Equal(got, want) {
		t.Errorf("Lint() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestIssue_String(t *testing.T) {
	tests := []struct {
		issue Issue
		want  string
	}{
		{
			Issue{Kind: IssueNotKernelFeature, Table: "armv", Label: "ARMv8.3", Token: "jsvt", Suggestion: "jscvt"},
			`armv/ARMv8.3: "jsvt" is not a kernel feature name (did you mean "jscvt"?)`,
		},
		{
			Issue{Kind: IssueNotKernelFeature, Table: "t", Label: "l", Token: "zzzzzz"},
			`t/l: "zzzzzz" is not a kernel feature name`,
		},
		{
			Issue{Kind: IssueKind(9), Table: "t", Label: "l", Token: "x"},
			`t/l: "x": IssueKind(9)`,
		},
	}
	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSuggestKernelFeature(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"jsvt", "jscvt"},
		{"svesh3", "svesha3"},
		{"asimd", "asimd"},
		{"completelyunrelated", ""},
	}
	for _, tt := range tests {
		if got := suggestKernelFeature(tt.name); got != tt.want {
			t.Errorf("suggestKernelFeature(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsKernelFeature(t *testing.T) {
	for _, name := range []string{"fp", "sve2", "mte3", "smefa64", "poe"} {
		if !IsKernelFeature(name) {
			t.Errorf("IsKernelFeature(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"jsvt", "svesh3", "", "FP"} {
		if IsKernelFeature(name) {
			t.Errorf("IsKernelFeature(%q) = true, want false", name)
		}
	}
}
