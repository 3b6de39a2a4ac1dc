package morpheus

// ConjugationForm is a single declared form line, e.g. "1sg stem -o".
// An empty Person marks a non-personal form such as a participle.
type ConjugationForm struct {
	// Person is the grammatical person label ("1sg" … "3pl"), or "".
	Person string
	// StemName references a stem defined in the owning pattern.
	StemName string
	// Ending is the suffix text, usually written with a leading "-".
	Ending string
}

// ConjugationPattern is the complete rule set for one tense/mood: its
// applicability condition, the declared forms, and a table of named stems,
// each a chain of adjustments applied left-to-right to the infinitive.
type ConjugationPattern struct {
	// Name is the tense/mood label, e.g. "present indicative".
	Name string
	// Condition decides whether the pattern applies to a verb.
	Condition Condition
	// Forms lists the declared forms in source order.
	Forms []ConjugationForm
	// Stems maps stem name → adjustment chain. Stem names are unique
	// within one pattern.
	Stems map[string][]StemAdjustment
}

// Grammar is the ordered collection of conjugation patterns parsed from a
// morphology source. It is immutable once returned by ParseGrammar; order is
// significant as a last-write-wins tie-break for same-named patterns.
type Grammar struct {
	Patterns []*ConjugationPattern
}

// PatternCount returns the number of loaded patterns.
func (g *Grammar) PatternCount() int {
	if g == nil {
		return 0
	}
	return len(g.Patterns)
}
