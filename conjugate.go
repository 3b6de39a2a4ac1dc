package morpheus

import (
	"errors"
	"fmt"
	"strings"
)

// ErrVerbNotFound reports a conjugation request for an infinitive absent
// from the lexicon. Returned errors satisfy errors.Is against this sentinel
// and errors.As against *VerbNotFoundError.
var ErrVerbNotFound = errors.New("verb not found in lexicon")

// VerbNotFoundError carries the requested infinitive.
type VerbNotFoundError struct {
	Infinitive string
}

func (e *VerbNotFoundError) Error() string {
	return fmt.Sprintf("verb %q not found in lexicon", e.Infinitive)
}

// Is makes errors.Is(err, ErrVerbNotFound) hold.
func (e *VerbNotFoundError) Is(target error) bool { return target == ErrVerbNotFound }

// ConjugationTable holds the full conjugation of one verb.
type ConjugationTable struct {
	// Verb is the lexicon entry the table was computed for.
	Verb *Verb
	// Tenses maps tense/mood label → person label → surface form.
	// Non-personal forms are keyed by GenericPerson.
	Tenses map[string]map[string]string
}

// conjugate builds the table for a verb: every pattern whose condition
// matches contributes its forms, in grammar order. When two patterns share
// a name the later one overwrites the earlier entry.
func conjugate(g *Grammar, verb *Verb) *ConjugationTable {
	table := &ConjugationTable{
		Verb:   verb,
		Tenses: make(map[string]map[string]string),
	}

	for _, p := range g.Patterns {
		if !p.Condition.Matches(verb) {
			continue
		}

		forms := make(map[string]string, len(p.Forms))
		for _, f := range p.Forms {
			stem := computeStem(verb.Infinitive, f.StemName, p.Stems)
			person := f.Person
			if person == "" {
				person = GenericPerson
			}
			forms[person] = stem + strings.TrimPrefix(f.Ending, "-")
		}
		table.Tenses[p.Name] = forms
	}
	return table
}

// computeStem applies a stem's adjustment chain to the bare infinitive,
// each step consuming the previous step's output. An undeclared stem name
// resolves to the infinitive unchanged.
func computeStem(infinitive, stemName string, stems map[string][]StemAdjustment) string {
	chain, ok := stems[stemName]
	if !ok {
		return infinitive
	}
	stem := infinitive
	for _, adj := range chain {
		stem = adj.Apply(stem)
	}
	return stem
}
