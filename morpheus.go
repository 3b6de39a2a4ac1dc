// Package morpheus is a morphological rule engine for verb conjugation.
// It parses a declarative .morphology grammar (tenses/moods expressed as
// stems derived from the infinitive plus endings) and a .lexicon of verbs
// annotated with irregularity properties, and produces full conjugation
// tables.
package morpheus

import "sort"

// Engine holds a loaded grammar and lexicon and provides the public API.
// Both are immutable after construction, so an Engine is safe for
// concurrent Conjugate calls without locking.
type Engine struct {
	grammar *Grammar
	lexicon Lexicon
}

// New loads a grammar and a lexicon from the given source files and
// returns a ready-to-use Engine.
func New(grammarPath, lexiconPath string) (*Engine, error) {
	g, err := LoadGrammar(grammarPath)
	if err != nil {
		return nil, err
	}
	lx, err := LoadLexicon(lexiconPath)
	if err != nil {
		return nil, err
	}
	return NewEngine(g, lx), nil
}

// NewEngine wires an already-parsed grammar and lexicon into an Engine.
func NewEngine(g *Grammar, lx Lexicon) *Engine {
	return &Engine{grammar: g, lexicon: lx}
}

// Conjugate returns the full conjugation table for an infinitive, covering
// every pattern whose condition matches the verb. It fails with a
// *VerbNotFoundError when the infinitive is absent from the lexicon.
func (e *Engine) Conjugate(infinitive string) (*ConjugationTable, error) {
	verb, ok := e.lexicon[infinitive]
	if !ok {
		return nil, &VerbNotFoundError{Infinitive: infinitive}
	}
	return conjugate(e.grammar, verb), nil
}

// Verb looks up a lexicon entry by infinitive; nil when absent.
func (e *Engine) Verb(infinitive string) *Verb {
	return e.lexicon[infinitive]
}

// Infinitives returns all lexicon infinitives in sorted order.
func (e *Engine) Infinitives() []string {
	out := make([]string, 0, len(e.lexicon))
	for inf := range e.lexicon {
		out = append(out, inf)
	}
	sort.Strings(out)
	return out
}

// PatternCount returns the number of loaded conjugation patterns.
func (e *Engine) PatternCount() int { return e.grammar.PatternCount() }

// VerbCount returns the number of loaded verbs.
func (e *Engine) VerbCount() int { return e.lexicon.VerbCount() }

// Grammar returns the loaded grammar.
func (e *Engine) Grammar() *Grammar { return e.grammar }
