// Package rules holds the Margolus block rules: authored pattern to
// replacement pairs expanded with left-right mirror symmetry.
package rules

import (
	"fmt"

	"sand-ca/internal/cell"
)

// Rule maps one 2x2 input pattern to its replacement.
type Rule struct {
	Name        string
	Pattern     cell.Pattern
	Replacement cell.Pattern
}

// Mirror returns the rule with both patterns column-mirrored.
func (r Rule) Mirror() Rule {
	return Rule{Name: r.Name, Pattern: r.Pattern.Mirror(), Replacement: r.Replacement.Mirror()}
}

// ConfigurationError reports two rules that map the same pattern to
// different replacements.
type ConfigurationError struct {
	Pattern     cell.Pattern
	Existing    cell.Pattern
	Conflicting cell.Pattern
	Rule        string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("rules: pattern %v maps to both %v and %v", e.Pattern, e.Existing, e.Conflicting)
	if e.Rule != "" {
		msg += fmt.Sprintf(" (rule %q)", e.Rule)
	}
	return msg
}

const tableSize = cell.Count * cell.Count * cell.Count * cell.Count

// Table is an immutable pattern lookup built from authored rules.
type Table struct {
	base     []Rule
	expanded []Rule
	lookup   [tableSize]cell.Pattern
	present  [tableSize]bool
}

// Build expands base with the mirror of every rule and indexes the result.
// A pattern that ends up with two different replacements is rejected.
func Build(base []Rule) (*Table, error) {
	t := &Table{
		base:     append([]Rule(nil), base...),
		expanded: make([]Rule, 0, 2*len(base)),
	}
	for i := range t.lookup {
		t.lookup[i] = patternForKey(i)
	}
	for _, r := range base {
		for _, rr := range [2]Rule{r, r.Mirror()} {
			if !rr.Pattern.Valid() || !rr.Replacement.Valid() {
				return nil, fmt.Errorf("rules: rule %q holds an unknown cell type", rr.Name)
			}
			if err := t.insert(rr); err != nil {
				return nil, err
			}
			t.expanded = append(t.expanded, rr)
		}
	}
	return t, nil
}

// MustBuild is like Build but panics on error. It is meant for the shipped
// rule sets, which are covered by tests.
func MustBuild(base []Rule) *Table {
	t, err := Build(base)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) insert(r Rule) error {
	k := r.Pattern.Key()
	if t.present[k] {
		if t.lookup[k] != r.Replacement {
			return &ConfigurationError{
				Pattern:     r.Pattern,
				Existing:    t.lookup[k],
				Conflicting: r.Replacement,
				Rule:        r.Name,
			}
		}
		return nil
	}
	t.present[k] = true
	t.lookup[k] = r.Replacement
	return nil
}

// Lookup returns the replacement for p, or p itself when no rule matches.
func (t *Table) Lookup(p cell.Pattern) cell.Pattern {
	if !p.Valid() {
		return p
	}
	return t.lookup[p.Key()]
}

// Has reports whether a rule is keyed on p.
func (t *Table) Has(p cell.Pattern) bool {
	return p.Valid() && t.present[p.Key()]
}

// Len is the length of the expanded rule list, always twice the base list.
func (t *Table) Len() int { return len(t.expanded) }

// Base returns a copy of the authored rules.
func (t *Table) Base() []Rule { return append([]Rule(nil), t.base...) }

// Rules returns a copy of the expanded rules in insertion order: each base
// rule followed by its mirror.
func (t *Table) Rules() []Rule { return append([]Rule(nil), t.expanded...) }

// Export returns the expanded rules as two parallel sequences.
func (t *Table) Export() (patterns, replacements []cell.Pattern) {
	patterns = make([]cell.Pattern, len(t.expanded))
	replacements = make([]cell.Pattern, len(t.expanded))
	for i, r := range t.expanded {
		patterns[i] = r.Pattern
		replacements[i] = r.Replacement
	}
	return patterns, replacements
}

// ExportCodes is Export decomposed into per-cell codes.
func (t *Table) ExportCodes() (patterns, replacements [][4]uint8) {
	patterns = make([][4]uint8, len(t.expanded))
	replacements = make([][4]uint8, len(t.expanded))
	for i, r := range t.expanded {
		patterns[i] = r.Pattern.Codes()
		replacements[i] = r.Replacement.Codes()
	}
	return patterns, replacements
}

func patternForKey(k int) cell.Pattern {
	var p cell.Pattern
	for i := 3; i >= 0; i-- {
		p[i] = cell.Type(k % cell.Count)
		k /= cell.Count
	}
	return p
}
