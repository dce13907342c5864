package armfeatures

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSourceUnavailable is returned when the feature source cannot be opened or read.
var ErrSourceUnavailable = errors.New("feature source unavailable")

// ErrUnknownSource is returned when a [Source] value names no known source.
var ErrUnknownSource = errors.New("unknown source")

// ErrUnsupportedPlatform is returned on platforms where a system query is not implemented.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// SourceError reports a failure to read feature tokens from a source.
type SourceError struct {
	Source Source
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: read %s (%s): %v", ErrSourceUnavailable, e.Path, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrSourceUnavailable, e.Source, e.Err)
}

func (e *SourceError) Unwrap() []error {
	return []error{ErrSourceUnavailable, e.Err}
}

// FeatureSet is a set of feature tokens that remembers insertion order.
//
// A nil *FeatureSet behaves as an empty set for all read operations.
type FeatureSet struct {
	names []string
	index map[string]struct{}
}

// NewFeatureSet returns a set holding names, duplicates collapsed.
func NewFeatureSet(names ...string) *FeatureSet {
	s := &FeatureSet{}
	s.Add(names...)
	return s
}

// Add inserts names not already present.
func (s *FeatureSet) Add(names ...string) {
	if s.index == nil {
		s.index = make(map[string]struct{}, len(names))
	}
	for _, n := range names {
		if _, ok := s.index[n]; ok {
			continue
		}
		s.index[n] = struct{}{}
		s.names = append(s.names, n)
	}
}

// Has reports whether name is in the set.
func (s *FeatureSet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Len returns the number of tokens in the set.
func (s *FeatureSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns a copy of the tokens in insertion order.
func (s *FeatureSet) Names() []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Intersect returns the tokens of s also in o, in the order of s.
func (s *FeatureSet) Intersect(o *FeatureSet) *FeatureSet {
	out := &FeatureSet{}
	for _, n := range s.Names() {
		if o.Has(n) {
			out.Add(n)
		}
	}
	return out
}

// Difference returns the tokens of s not in o, in the order of s.
func (s *FeatureSet) Difference(o *FeatureSet) *FeatureSet {
	out := &FeatureSet{}
	for _, n := range s.Names() {
		if !o.Has(n) {
			out.Add(n)
		}
	}
	return out
}

// Union returns the tokens of s followed by the tokens of o not in s.
func (s *FeatureSet) Union(o *FeatureSet) *FeatureSet {
	out := NewFeatureSet(s.Names()...)
	out.Add(o.Names()...)
	return out
}

// Equal reports whether s and o hold the same tokens, regardless of order.
func (s *FeatureSet) Equal(o *FeatureSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, n := range s.Names() {
		if !o.Has(n) {
			return false
		}
	}
	return true
}

// String joins the tokens with ", ".
func (s *FeatureSet) String() string {
	return strings.Join(s.Names(), ", ")
}

// MarshalJSON encodes the set as an array of tokens in insertion order.
func (s *FeatureSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Names())
}

// TableKind tells how the labels of a [Table] relate to each other.
type TableKind int

const (
	// Generations tables list, per label, only the tokens that label introduces.
	// A token is expected under a single label.
	Generations TableKind = iota
	// Families tables list, per label, every token the family supports.
	// Tokens are shared between labels.
	Families
)

func (k TableKind) String() string {
	switch k {
	case Generations:
		return "generations"
	case Families:
		return "families"
	default:
		return fmt.Sprintf("TableKind(%d)", k)
	}
}

// Entry is one label of a [Table] together with its feature tokens.
type Entry struct {
	Label    string   `json:"label"`
	Features []string `json:"features"`
}

// Table is an immutable, ordered mapping from labels to feature sets.
type Table struct {
	name   string
	title  string
	kind   TableKind
	labels []string
	sets   map[string]*FeatureSet
	raw    map[string][]string
	known  *FeatureSet
}

// NewTable builds a table from entries, keeping their order.
// Entries repeating a label are merged into the first occurrence.
// The entries are copied, later changes to them do not affect the table.
func NewTable(name, title string, kind TableKind, entries ...Entry) *Table {
	t := &Table{
		name:  name,
		title: title,
		kind:  kind,
		sets:  make(map[string]*FeatureSet, len(entries)),
		raw:   make(map[string][]string, len(entries)),
		known: &FeatureSet{},
	}
	for _, e := range entries {
		set, ok := t.sets[e.Label]
		if !ok {
			set = &FeatureSet{}
			t.sets[e.Label] = set
			t.labels = append(t.labels, e.Label)
		}
		set.Add(e.Features...)
		t.raw[e.Label] = append(t.raw[e.Label], e.Features...)
		t.known.Add(e.Features...)
	}
	return t
}

// Name returns the short identifier of the table (e.g. "armv").
func (t *Table) Name() string { return t.name }

// Title returns the report heading used for the table.
func (t *Table) Title() string { return t.title }

// Kind returns how the labels of the table relate to each other.
func (t *Table) Kind() TableKind { return t.kind }

// Labels returns the labels in table order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Features returns a copy of the tokens under label, or nil if the label is unknown.
func (t *Table) Features(label string) *FeatureSet {
	set, ok := t.sets[label]
	if !ok {
		return nil
	}
	return NewFeatureSet(set.Names()...)
}

// Entries returns the table contents in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.labels))
	for _, l := range t.labels {
		out = append(out, Entry{Label: l, Features: t.sets[l].Names()})
	}
	return out
}

// Known returns the union of the tokens under every label.
func (t *Table) Known() *FeatureSet {
	return NewFeatureSet(t.known.Names()...)
}

// Match is one label whose tokens intersect the detected set.
type Match struct {
	Label    string      `json:"label"`
	Features *FeatureSet `json:"features"`
}

// Classification holds the matches of a detected set against one [Table].
type Classification struct {
	Table   string  `json:"table"`
	Title   string  `json:"title"`
	Matches []Match `json:"matches"`
}

// Labels returns the matched labels in table order.
func (c Classification) Labels() []string {
	out := make([]string, 0, len(c.Matches))
	for _, m := range c.Matches {
		out = append(out, m.Label)
	}
	return out
}

// Lookup returns the matched tokens for label.
func (c Classification) Lookup(label string) (*FeatureSet, bool) {
	for _, m := range c.Matches {
		if m.Label == label {
			return m.Features, true
		}
	}
	return nil, false
}

// Report is the outcome of classifying detected tokens against reference tables.
type Report struct {
	// Detected holds every token read from the source.
	Detected *FeatureSet `json:"detected"`
	// Classifications holds one entry per table, in the order the tables were supplied.
	Classifications []Classification `json:"classifications"`
	// Unknown holds the detected tokens no table lists.
	Unknown *FeatureSet `json:"unknown"`
}
