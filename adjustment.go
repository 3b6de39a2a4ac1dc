package morpheus

import "strings"

// AdjustmentKind selects how a StemAdjustment transforms its input.
type AdjustmentKind int

const (
	// AdjustDelete removes a trailing suffix, e.g. (-ar → ∅).
	AdjustDelete AdjustmentKind = iota
	// AdjustReplaceSuffix swaps a trailing suffix for new text, e.g. (-er → ie).
	AdjustReplaceSuffix
	// AdjustFinalVowel replaces the right-most occurrence of a single vowel,
	// e.g. (e → ie in final syllable). Models diphthongization stem changes.
	AdjustFinalVowel
	// AdjustReplaceAll replaces every occurrence of the pattern.
	AdjustReplaceAll
)

// deletionMark is the replacement glyph denoting removal in adjustment lists.
const deletionMark = "∅"

// finalSyllableQualifier is the trailing phrase restricting a vowel
// substitution to the syllable nearest the ending.
const finalSyllableQualifier = "in final syllable"

// StemAdjustment is one atomic stem transformation. Pattern is stored with
// its leading suffix marker ("-") already stripped. Replacement is empty for
// AdjustDelete.
type StemAdjustment struct {
	Kind        AdjustmentKind
	Pattern     string
	Replacement string
}

// Apply transforms text according to the adjustment kind. It is pure: the
// same (text, adjustment) pair always yields the same output, and a
// non-matching pattern leaves text unchanged.
func (a StemAdjustment) Apply(text string) string {
	switch a.Kind {
	case AdjustDelete:
		if strings.HasSuffix(text, a.Pattern) {
			return text[:len(text)-len(a.Pattern)]
		}
		return text

	case AdjustReplaceSuffix:
		if strings.HasSuffix(text, a.Pattern) {
			return text[:len(text)-len(a.Pattern)] + a.Replacement
		}
		return text

	case AdjustFinalVowel:
		runes := []rune(text)
		for i := len(runes) - 1; i >= 0; i-- {
			if string(runes[i]) == a.Pattern {
				return string(runes[:i]) + a.Replacement + string(runes[i+1:])
			}
		}
		return text

	default: // AdjustReplaceAll
		return strings.ReplaceAll(text, a.Pattern, a.Replacement)
	}
}

// parseAdjustments parses a comma-separated adjustment list such as
// "-ar → ∅, e → ie in final syllable" into StemAdjustment values.
// Entries without an arrow are skipped.
func parseAdjustments(list string) []StemAdjustment {
	var out []StemAdjustment
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		pat, rep, ok := strings.Cut(entry, "→")
		if !ok {
			continue
		}
		pat = strings.TrimSpace(pat)
		rep = strings.TrimSpace(rep)

		finalSyllable := false
		if q := strings.TrimSuffix(rep, finalSyllableQualifier); q != rep {
			finalSyllable = true
			rep = strings.TrimSpace(q)
		}

		switch {
		case rep == deletionMark:
			out = append(out, StemAdjustment{
				Kind:    AdjustDelete,
				Pattern: strings.TrimPrefix(pat, "-"),
			})
		case strings.HasPrefix(pat, "-"):
			out = append(out, StemAdjustment{
				Kind:        AdjustReplaceSuffix,
				Pattern:     strings.TrimPrefix(pat, "-"),
				Replacement: rep,
			})
		case finalSyllable:
			out = append(out, StemAdjustment{
				Kind:        AdjustFinalVowel,
				Pattern:     pat,
				Replacement: rep,
			})
		default:
			out = append(out, StemAdjustment{
				Kind:        AdjustReplaceAll,
				Pattern:     pat,
				Replacement: rep,
			})
		}
	}
	return out
}
