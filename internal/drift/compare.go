package drift

import "sort"

// Result is the outcome of checking one snapshot against another.
// Expected is the schema that should exist; Actual is what a database
// reports. Missing means present in expected only, Extra means present
// in actual only.
type Result struct {
	Match          bool
	ExpectedRoot   string
	ActualRoot     string
	MissingTables  []string
	ExtraTables    []string
	ModifiedTables map[string]*TableDrift
}

// HasDrift reports whether the fingerprints differ at all.
func (r *Result) HasDrift() bool {
	return !r.Match
}

// TableDrift lists the drifted parts of one table present on both sides.
type TableDrift struct {
	Name            string
	MissingColumns  []string
	ExtraColumns    []string
	ModifiedColumns []string
	MissingIndexes  []string
	ExtraIndexes    []string
	ModifiedIndexes []string
	MissingFKs      []string
	ExtraFKs        []string
	ModifiedFKs     []string
}

// HasDifferences reports whether any part of the table drifted.
func (d *TableDrift) HasDifferences() bool {
	return len(d.MissingColumns) > 0 || len(d.ExtraColumns) > 0 || len(d.ModifiedColumns) > 0 ||
		len(d.MissingIndexes) > 0 || len(d.ExtraIndexes) > 0 || len(d.ModifiedIndexes) > 0 ||
		len(d.MissingFKs) > 0 || len(d.ExtraFKs) > 0 || len(d.ModifiedFKs) > 0
}

// Compare checks two fingerprints. When the roots match, the result
// carries no detail; otherwise it names the missing, extra, and
// modified tables and drills into each modified one.
func Compare(expected, actual *Fingerprint) *Result {
	result := &Result{
		Match:          expected.Root == actual.Root,
		ExpectedRoot:   expected.Root,
		ActualRoot:     actual.Root,
		ModifiedTables: make(map[string]*TableDrift),
	}
	if result.Match {
		return result
	}

	for name := range expected.Tables {
		if _, ok := actual.Tables[name]; !ok {
			result.MissingTables = append(result.MissingTables, name)
		}
	}
	sort.Strings(result.MissingTables)

	for name := range actual.Tables {
		if _, ok := expected.Tables[name]; !ok {
			result.ExtraTables = append(result.ExtraTables, name)
		}
	}
	sort.Strings(result.ExtraTables)

	for name, exp := range expected.Tables {
		act, ok := actual.Tables[name]
		if !ok {
			continue
		}
		if exp.Hash != act.Hash {
			result.ModifiedTables[name] = compareTableHashes(exp, act)
		}
	}

	return result
}

func compareTableHashes(expected, actual *TableHash) *TableDrift {
	d := &TableDrift{Name: expected.Name}
	d.MissingColumns, d.ExtraColumns, d.ModifiedColumns = diffHashes(expected.Columns, actual.Columns)
	d.MissingIndexes, d.ExtraIndexes, d.ModifiedIndexes = diffHashes(expected.Indexes, actual.Indexes)
	d.MissingFKs, d.ExtraFKs, d.ModifiedFKs = diffHashes(expected.ForeignKeys, actual.ForeignKeys)
	return d
}

func diffHashes(expected, actual map[string]string) (missing, extra, modified []string) {
	for name, hash := range expected {
		actualHash, ok := actual[name]
		switch {
		case !ok:
			missing = append(missing, name)
		case hash != actualHash:
			modified = append(modified, name)
		}
	}
	for name := range actual {
		if _, ok := expected[name]; !ok {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	sort.Strings(modified)
	return missing, extra, modified
}
