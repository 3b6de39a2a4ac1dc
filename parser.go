package morpheus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Grammar source syntax, block by block:
//
//	define conjugation <name> [for <condition>] as
//	    <person> <stem> <ending>,
//	    ...
//	  with
//	    <stem> = infinitive adjusted: (<adjustments>),
//	    <stem> = <base-stem> adjusted: (<adjustments>);
//
//	define <x>-participle for <condition> as
//	    <stem> <ending>
//	    with <stem> = infinitive adjusted: (<adjustments>);
//
// Blocks end at a blank line, the next "define", or "end morphology".
// Lines starting with "#" are comments. Blocks that do not match either
// shape are skipped: the parser is deliberately permissive, like the
// data-file loaders this format descends from.

type blockKind int

const (
	blockUnknown blockKind = iota
	blockFinite
	blockParticiple
)

// rawBlock is a recognized source block before semantic extraction.
type rawBlock struct {
	kind      blockKind
	name      string
	condition string
	body      []string
}

// LoadGrammar reads and parses a morphology source file.
func LoadGrammar(path string) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar %s: %w", path, err)
	}
	return ParseGrammar(string(data)), nil
}

// ParseGrammar parses morphology source text into a Grammar. Parsing never
// fails: unrecognized blocks are dropped.
func ParseGrammar(src string) *Grammar {
	g := &Grammar{}
	for _, b := range splitBlocks(src) {
		var p *ConjugationPattern
		switch b.kind {
		case blockFinite:
			p = extractFinitePattern(b)
		case blockParticiple:
			p = extractParticiplePattern(b)
		}
		if p != nil {
			g.Patterns = append(g.Patterns, p)
		}
	}
	return g
}

// splitBlocks performs structural recognition: it cuts the source into
// tagged blocks without interpreting their contents.
func splitBlocks(src string) []rawBlock {
	var blocks []rawBlock
	var cur *rawBlock

	flush := func() {
		if cur != nil {
			blocks = append(blocks, *cur)
			cur = nil
		}
	}

	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		switch {
		case strings.HasPrefix(line, "#"):
			continue
		case line == "end morphology":
			flush()
			return blocks
		case line == "":
			flush()
		case strings.HasPrefix(line, "define "):
			flush()
			if b, ok := classifyHeader(line); ok {
				cur = &b
			}
		default:
			if cur != nil {
				cur.body = append(cur.body, line)
			}
		}
	}
	flush()
	return blocks
}

// classifyHeader tags a "define ... as" line as a finite-pattern or
// participle block and splits out its name and condition.
func classifyHeader(line string) (rawBlock, bool) {
	rest, ok := strings.CutPrefix(line, "define ")
	if !ok {
		return rawBlock{}, false
	}
	rest, ok = strings.CutSuffix(rest, " as")
	if !ok {
		return rawBlock{}, false
	}

	if decl, found := strings.CutPrefix(rest, "conjugation "); found {
		name, cond, _ := strings.Cut(decl, " for ")
		return rawBlock{
			kind:      blockFinite,
			name:      strings.TrimSpace(name),
			condition: strings.TrimSpace(cond),
		}, true
	}

	name, cond, found := strings.Cut(rest, " for ")
	if found && strings.HasSuffix(name, "-participle") {
		return rawBlock{
			kind:      blockParticiple,
			name:      strings.TrimSpace(name),
			condition: strings.TrimSpace(cond),
		}, true
	}

	return rawBlock{}, false
}

// extractFinitePattern interprets a finite-pattern block: form lines up to
// the "with" separator, stem definitions after it.
func extractFinitePattern(b rawBlock) *ConjugationPattern {
	p := &ConjugationPattern{
		Name:      b.name,
		Condition: ParseCondition(b.condition),
		Stems:     make(map[string][]StemAdjustment),
	}

	inStems := false
	for _, line := range b.body {
		if line == "with" {
			inStems = true
			continue
		}
		if inStems {
			parseStemDef(line, p.Stems)
			continue
		}
		line = strings.TrimSuffix(line, ",")
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			p.Forms = append(p.Forms, ConjugationForm{
				Person:   fields[0],
				StemName: fields[1],
				Ending:   fields[2],
			})
		}
	}
	return p
}

// extractParticiplePattern interprets a participle block: a single
// two-field form line and a "with <stemdef>;" line.
func extractParticiplePattern(b rawBlock) *ConjugationPattern {
	p := &ConjugationPattern{
		Name:      b.name,
		Condition: ParseCondition(b.condition),
		Stems:     make(map[string][]StemAdjustment),
	}

	for _, line := range b.body {
		if def, ok := strings.CutPrefix(line, "with "); ok {
			parseStemDef(def, p.Stems)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 2 {
			p.Forms = append(p.Forms, ConjugationForm{
				Person:   "",
				StemName: fields[0],
				Ending:   fields[1],
			})
		}
	}
	return p
}

// parseStemDef parses one stem definition:
//
//	<name> = infinitive adjusted: (<adjustments>)
//	<name> = <base-stem> adjusted: (<adjustments>)
//
// A chained definition extends the base stem's adjustment list. A base that
// is neither "infinitive" nor a previously defined stem yields an empty
// chain, so the stem resolves to the bare infinitive.
func parseStemDef(line string, stems map[string][]StemAdjustment) {
	line = strings.TrimRight(line, ",;")

	name, rest, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	base, list, ok := strings.Cut(rest, "adjusted:")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	base = strings.TrimSpace(base)

	open := strings.Index(list, "(")
	end := strings.LastIndex(list, ")")
	if name == "" || open < 0 || end < open {
		return
	}
	adjs := parseAdjustments(list[open+1 : end])

	switch {
	case base == "infinitive":
		stems[name] = adjs
	default:
		baseChain, defined := stems[base]
		if !defined {
			// Unresolved base: record the stem with an empty chain.
			stems[name] = nil
			return
		}
		chain := make([]StemAdjustment, 0, len(baseChain)+len(adjs))
		chain = append(chain, baseChain...)
		stems[name] = append(chain, adjs...)
	}
}
