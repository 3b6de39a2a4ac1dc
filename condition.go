package morpheus

import (
	"regexp"
	"strings"
)

// Condition is a pattern-applicability expression, parsed once at load time
// and evaluated by structural dispatch against a verb.
type Condition interface {
	Matches(v *Verb) bool
}

// Always matches every verb. An empty condition text parses to this.
type Always struct{}

// Matches reports true for any verb.
func (Always) Matches(*Verb) bool { return true }

// EndsWithAny matches verbs whose infinitive ends with any listed suffix.
// Suffixes are stored without their leading marker.
type EndsWithAny struct {
	Suffixes []string
}

func (c EndsWithAny) Matches(v *Verb) bool {
	for _, suf := range c.Suffixes {
		if strings.HasSuffix(v.Infinitive, suf) {
			return true
		}
	}
	return false
}

// HasProperty matches verbs declaring an irregularity property that appears
// textually within the original condition clause, e.g. a clause
// `stem-change e→ie` matches a verb carrying the property "stem-change e→ie".
type HasProperty struct {
	Clause string
}

func (c HasProperty) Matches(v *Verb) bool {
	for _, prop := range v.Properties {
		if strings.Contains(c.Clause, prop) {
			return true
		}
	}
	return false
}

// And matches when every conjunct matches.
type And struct {
	Conds []Condition
}

func (c And) Matches(v *Verb) bool {
	for _, cond := range c.Conds {
		if !cond.Matches(v) {
			return false
		}
	}
	return true
}

// Never is the parse of an unrecognized condition shape. It matches nothing
// and keeps the raw text for inspection.
type Never struct {
	Raw string
}

// Matches reports false for any verb.
func (Never) Matches(*Verb) bool { return false }

// reSuffixLiteral extracts quoted suffix literals from an
// `infinitive like "-ar" "-er"` clause.
var reSuffixLiteral = regexp.MustCompile(`"(-[^"]+)"`)

// conjunctionSep separates the conjuncts of a compound condition.
const conjunctionSep = " and "

// ParseCondition parses condition text into a Condition expression.
// Unrecognized shapes parse to Never rather than failing.
func ParseCondition(text string) Condition {
	text = strings.TrimSpace(text)
	if text == "" {
		return Always{}
	}
	if strings.Contains(text, conjunctionSep) {
		var conds []Condition
		for _, part := range strings.Split(text, conjunctionSep) {
			conds = append(conds, parseSingleCondition(strings.TrimSpace(part)))
		}
		return And{Conds: conds}
	}
	return parseSingleCondition(text)
}

func parseSingleCondition(text string) Condition {
	if strings.Contains(text, "infinitive like") {
		var sufs []string
		for _, m := range reSuffixLiteral.FindAllStringSubmatch(text, -1) {
			sufs = append(sufs, strings.TrimPrefix(m[1], "-"))
		}
		return EndsWithAny{Suffixes: sufs}
	}
	if strings.Contains(text, "stem-change") {
		return HasProperty{Clause: text}
	}
	return Never{Raw: text}
}
