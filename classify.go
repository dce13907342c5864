package armfeatures

// Classify intersects detected with every label of t, in table order.
// Labels with an empty intersection are left out.
func Classify(t *Table, detected *FeatureSet) Classification {
	c := Classification{
		Table:   t.Name(),
		Title:   t.Title(),
		Matches: []Match{},
	}
	for _, label := range t.labels {
		common := t.sets[label].Intersect(detected)
		if common.Len() == 0 {
			continue
		}
		c.Matches = append(c.Matches, Match{Label: label, Features: common})
	}
	return c
}

// Unknown returns the tokens of detected that no table lists.
func Unknown(detected *FeatureSet, tables ...*Table) *FeatureSet {
	known := &FeatureSet{}
	for _, t := range tables {
		known.Add(t.known.Names()...)
	}
	return detected.Difference(known)
}

// NewReport classifies detected against tables and collects the unknown tokens.
func NewReport(detected *FeatureSet, tables ...*Table) *Report {
	if detected == nil {
		detected = &FeatureSet{}
	}
	r := &Report{
		Detected:        detected,
		Classifications: make([]Classification, 0, len(tables)),
		Unknown:         Unknown(detected, tables...),
	}
	for _, t := range tables {
		r.Classifications = append(r.Classifications, Classify(t, detected))
	}
	return r
}
