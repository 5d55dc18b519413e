package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"sand-ca/internal/cell"
)

// authoredRule is the on-disk form of a Rule.
type authoredRule struct {
	Name        string   `yaml:"name,omitempty"`
	Pattern     []string `yaml:"pattern"`
	Replacement []string `yaml:"replacement"`
}

type ruleFile struct {
	Rules []authoredRule `yaml:"rules"`
}

// LoadFile reads authored rules from a YAML file. The result still has to go
// through Build.
func LoadFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	return Decode(data)
}

// Decode parses authored rules from YAML:
//
//	rules:
//	  - name: fall
//	    pattern: [sand, empty, empty, empty]
//	    replacement: [empty, empty, sand, empty]
func Decode(data []byte) ([]Rule, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	out := make([]Rule, 0, len(f.Rules))
	for i, ar := range f.Rules {
		name := ar.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		p, err := parsePattern(ar.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %s pattern: %w", name, err)
		}
		r, err := parsePattern(ar.Replacement)
		if err != nil {
			return nil, fmt.Errorf("rule %s replacement: %w", name, err)
		}
		out = append(out, Rule{Name: ar.Name, Pattern: p, Replacement: r})
	}
	return out, nil
}

// Encode renders rules in the format read by Decode.
func Encode(rs []Rule) ([]byte, error) {
	f := ruleFile{Rules: make([]authoredRule, len(rs))}
	for i, r := range rs {
		f.Rules[i] = authoredRule{
			Name:        r.Name,
			Pattern:     patternNames(r.Pattern),
			Replacement: patternNames(r.Replacement),
		}
	}
	return yaml.Marshal(f)
}

func parsePattern(names []string) (cell.Pattern, error) {
	var p cell.Pattern
	if len(names) != len(p) {
		return p, fmt.Errorf("want %d cells, got %d", len(p), len(names))
	}
	for i, n := range names {
		t, err := cell.Parse(n)
		if err != nil {
			return p, err
		}
		p[i] = t
	}
	return p, nil
}

func patternNames(p cell.Pattern) []string {
	out := make([]string, len(p))
	for i, t := range p {
		out[i] = t.String()
	}
	return out
}
