package morpheus

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Verb is a lexicon entry: an infinitive plus its declared irregularity
// properties, e.g. "stem-change e→ie".
type Verb struct {
	Infinitive string
	Properties []string
}

// Lexicon maps infinitive → Verb. It is immutable once returned by
// ParseLexicon; duplicate infinitives in the source are last-write-wins.
type Lexicon map[string]*Verb

// VerbCount returns the number of loaded verbs.
func (lx Lexicon) VerbCount() int { return len(lx) }

// LoadLexicon reads and parses a lexicon source file.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	return ParseLexicon(string(data)), nil
}

// ParseLexicon parses lexicon source text: repeated statements of the form
//
//	verb <infinitive> [(<comma-separated properties>)];
//
// with free-form whitespace between them and "#" comment lines. Statements
// that do not match the shape are skipped.
func ParseLexicon(src string) Lexicon {
	lx := make(Lexicon)

	// Drop comment lines before splitting on statement terminators.
	var sb strings.Builder
	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for _, stmt := range strings.Split(sb.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		decl, ok := strings.CutPrefix(stmt, "verb ")
		if !ok {
			continue
		}
		name, props, _ := strings.Cut(decl, "(")
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, " \t") {
			continue
		}

		v := &Verb{Infinitive: name}
		props = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(props), ")"))
		if props != "" {
			for _, p := range strings.Split(props, ",") {
				if p = strings.TrimSpace(p); p != "" {
					v.Properties = append(v.Properties, p)
				}
			}
		}
		lx[v.Infinitive] = v
	}
	return lx
}
