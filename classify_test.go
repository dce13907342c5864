package armfeatures

import (
	"reflect"
	"slices"
	"testing"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		detected    *FeatureSet
		tables      []*Table
		wantLabels  map[string][]string
		wantMatches map[string][]string
		wantUnknown []string
	}{
		{
			name:        "base generation only",
			detected:    NewFeatureSet("fp", "asimd", "aes"),
			tables:      []*Table{ArchVersions},
			wantLabels:  map[string][]string{"armv": {"ARMv8.0"}},
			wantMatches: map[string][]string{"ARMv8.0": {"fp", "asimd", "aes"}},
			wantUnknown: []string{},
		},
		{
			name:        "sve2 and an unknown token",
			detected:    NewFeatureSet("sve2", "bogusflag"),
			tables:      []*Table{ArchVersions},
			wantLabels:  map[string][]string{"armv": {"ARMv9.0"}},
			wantMatches: map[string][]string{"ARMv9.0": {"sve2"}},
			wantUnknown: []string{"bogusflag"},
		},
		{
			name:        "empty detected set",
			detected:    NewFeatureSet(),
			tables:      []*Table{ArchVersions, Processors},
			wantLabels:  map[string][]string{"armv": {}, "processors": {}},
			wantMatches: map[string][]string{},
			wantUnknown: []string{},
		},
		{
			name:       "mte in both tables",
			detected:   NewFeatureSet("mte"),
			tables:     []*Table{ArchVersions, Processors},
			wantLabels: map[string][]string{"armv": {"ARMv8.5"}, "processors": {"Cortex-A510", "Cortex-A710", "Cortex-X3"}},
			wantMatches: map[string][]string{
				"ARMv8.5":     {"mte"},
				"Cortex-A510": {"mte"},
				"Cortex-A710": {"mte"},
				"Cortex-X3":   {"mte"},
			},
			wantUnknown: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReport(tt.detected, tt.tables...)

			if len(r.Classifications) != len(tt.tables) {
				t.Fatalf("got %d classifications, want %d", len(r.Classifications), len(tt.tables))
			}
			for _, c := range r.Classifications {
				if got, want := c.Labels(), tt.wantLabels[c.Table]; !slices.Equal(got, want) {
					t.Errorf("%s labels = %v, want %v", c.Table, got, want)
				}
				for _, m := range c.Matches {
					want, ok := tt.wantMatches[m.Label]
					if !ok {
						t.Errorf("unexpected match %q", m.Label)
						continue
					}
					if got := m.Features.Names(); !slices.Equal(got, want) {
						t.Errorf("%s = %v, want %v", m.Label, got, want)
					}
				}
			}
			if got := r.Unknown.Names(); !slices.Equal(got, tt.wantUnknown) {
				t.Errorf("Unknown = %v, want %v", got, tt.wantUnknown)
			}
		})
	}
}

// detectedSamples covers empty, partial, cross-table and unknown-only inputs.
var detectedSamples = []*FeatureSet{
	NewFeatureSet(),
	NewFeatureSet("fp", "asimd", "evtstrm", "aes", "pmull", "sha1", "sha2", "crc32", "cpuid"),
	NewFeatureSet("fp", "atomics", "jscvt", "jsvt", "mte", "sme", "sve2", "bogus"),
	NewFeatureSet("only", "unknown", "tokens"),
	NewFeatureSet("svesha3", "svesh3", "rng", "wfxt", "ssbs"),
}

func TestClassify_CompleteAndMinimal(t *testing.T) {
	for _, tbl := range []*Table{ArchVersions, Processors} {
		for _, d := range detectedSamples {
			c := Classify(tbl, d)
			for _, label := range tbl.Labels() {
				common := tbl.Features(label).Intersect(d)
				got, matched := c.Lookup(label)
				switch {
				case common.Len() == 0 && matched:
					t.Errorf("%s: label %q matched with empty intersection for %v", tbl.Name(), label, d)
				case common.Len() > 0 && !matched:
					t.Errorf("%s: label %q missing for %v", tbl.Name(), label, d)
				case matched && !got.Equal(common):
					t.Errorf("%s: label %q = %v, want %v", tbl.Name(), label, got, common)
				}
			}
		}
	}
}

func TestUnknown_IffNotInAnyTable(t *testing.T) {
	tables := []*Table{ArchVersions, Processors}
	for _, d := range detectedSamples {
		unknown := Unknown(d, tables...)
		for _, tok := range d.Names() {
			known := false
			for _, tbl := range tables {
				for _, label := range tbl.Labels() {
					if tbl.Features(label).Has(tok) {
						known = true
					}
				}
			}
			if unknown.Has(tok) == known {
				t.Errorf("token %q: unknown = %v, known = %v", tok, unknown.Has(tok), known)
			}
		}
		for _, tok := range unknown.Names() {
			if !d.Has(tok) {
				t.Errorf("unknown token %q not in detected set", tok)
			}
		}
	}
}

func TestReport_EveryTokenAccountedFor(t *testing.T) {
	for _, d := range detectedSamples {
		r := NewReport(d, ArchVersions, Processors)
		for _, tok := range d.Names() {
			accounted := r.Unknown.Has(tok)
			for _, c := range r.Classifications {
				for _, m := range c.Matches {
					if m.Features.Has(tok) {
						accounted = true
					}
				}
			}
			if !accounted {
				t.Errorf("token %q is neither classified nor unknown", tok)
			}
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	for _, d := range detectedSamples {
		first := Classify(ArchVersions, d)
		second := Classify(ArchVersions, d)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Classify() not idempotent for %v: %v vs %v", d, first, second)
		}
	}
}

func TestClassify_PreservesTableOrder(t *testing.T) {
	tbl := NewTable("order", "Order", Generations,
		Entry{"zeta", []string{"z"}},
		Entry{"alpha", []string{"a"}},
		Entry{"mid", []string{"m"}},
	)

	c := Classify(tbl, NewFeatureSet("a", "m", "z"))
	if got, want := c.Labels(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestClassify_MatchOrderFollowsTable(t *testing.T) {
	c := Classify(ArchVersions, NewFeatureSet("sha2", "aes", "fp"))
	fs, ok := c.Lookup("ARMv8.0")
	if !ok {
		t.Fatal("ARMv8.0 not matched")
	}
	if got, want := fs.Names(), []string{"fp", "aes", "sha2"}; !slices.Equal(got, want) {
		t.Errorf("ARMv8.0 = %v, want %v", got, want)
	}
}

func TestNewReport_NilDetected(t *testing.T) {
	r := NewReport(nil, ArchVersions)
	if r.Detected == nil || r.Detected.Len() != 0 {
		t.Errorf("Detected = %v, want empty set", r.Detected)
	}
	if r.Unknown.Len() != 0 {
		t.Errorf("Unknown = %v, want empty", r.Unknown)
	}
}
