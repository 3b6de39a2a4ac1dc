package morpheus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLexicon(t *testing.T) {
	lx := ParseLexicon(`# comment
verb hablar;
verb pensar (stem-change e→ie);
verb tener (stem-change e→ie, irregular 1sg);
`)
	require.Equal(t, 3, lx.VerbCount())

	assert.Empty(t, lx["hablar"].Properties)
	assert.Equal(t, []string{"stem-change e→ie"}, lx["pensar"].Properties)
	assert.Equal(t, []string{"stem-change e→ie", "irregular 1sg"}, lx["tener"].Properties)
}

func TestParseLexiconFreeFormWhitespace(t *testing.T) {
	lx := ParseLexicon("verb hablar;   verb comer;\n\n\nverb vivir;")
	assert.Equal(t, 3, lx.VerbCount())
	assert.NotNil(t, lx["comer"])
}

func TestParseLexiconDuplicateLastWins(t *testing.T) {
	lx := ParseLexicon(`verb pensar;
verb pensar (stem-change e→ie);
`)
	require.Equal(t, 1, lx.VerbCount())
	assert.Equal(t, []string{"stem-change e→ie"}, lx["pensar"].Properties)

	lx = ParseLexicon(`verb pensar (stem-change e→ie);
verb pensar;
`)
	assert.Empty(t, lx["pensar"].Properties, "later entry without properties must clear the set")
}

func TestParseLexiconSkipsMalformedStatements(t *testing.T) {
	lx := ParseLexicon(`noun mesa;
verb;
verb hablar;
`)
	require.Equal(t, 1, lx.VerbCount())
	assert.NotNil(t, lx["hablar"])
}

func TestLoadLexiconMissingFile(t *testing.T) {
	_, err := LoadLexicon("data/does-not-exist.lexicon")
	require.Error(t, err)
	assert.ErrorContains(t, err, "does-not-exist")
}
