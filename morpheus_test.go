package morpheus

import (
	"errors"
	"reflect"
	"testing"
)

const (
	grammarFile = "data/es.morphology"
	lexiconFile = "data/es.lexicon"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := New(grammarFile, lexiconFile)
	if err != nil {
		t.Fatalf("New(%q, %q): %v", grammarFile, lexiconFile, err)
	}
	return eng
}

func TestNew(t *testing.T) {
	eng := newTestEngine(t)
	if eng.PatternCount() == 0 {
		t.Error("no patterns loaded")
	}
	if eng.VerbCount() == 0 {
		t.Error("no verbs loaded")
	}
	t.Logf("loaded %d patterns, %d verbs", eng.PatternCount(), eng.VerbCount())
}

func TestConjugateRegular(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		verb   string
		tense  string
		person string
		want   string
	}{
		{"hablar", "present indicative", "1sg", "hablo"},
		{"hablar", "present indicative", "3pl", "hablan"},
		{"hablar", "present subjunctive", "1sg", "hable"},
		{"comer", "present indicative", "1sg", "como"},
		{"comer", "present indicative", "1pl", "comemos"},
		{"vivir", "present indicative", "1sg", "vivo"},
		{"vivir", "present indicative", "2pl", "vivís"},
		{"hablar", "imperfect subjunctive -ra", "1sg", "hablara"},
		{"comer", "imperfect subjunctive -se", "3sg", "comiese"},
		{"hablar", "future", "1sg", "hablaré"},
		{"comer", "conditional", "3sg", "comería"},
	}
	for _, tt := range tests {
		table, err := eng.Conjugate(tt.verb)
		if err != nil {
			t.Fatalf("Conjugate(%q): %v", tt.verb, err)
		}
		got := table.Tenses[tt.tense][tt.person]
		if got != tt.want {
			t.Errorf("%s %s %s = %q, want %q", tt.verb, tt.tense, tt.person, got, tt.want)
		}
	}
}

func TestConjugateStemChanging(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		verb   string
		tense  string
		person string
		want   string
	}{
		// The diphthong appears only in forms referencing the changed stem.
		{"pensar", "present indicative", "1sg", "pienso"},
		{"pensar", "present indicative", "1pl", "pensamos"},
		{"pensar", "present subjunctive", "1sg", "piense"},
		{"querer", "present indicative", "1sg", "quiero"},
		{"querer", "present indicative", "1pl", "queremos"},
		{"poder", "present indicative", "1sg", "puedo"},
		{"poder", "present indicative", "1pl", "podemos"},
		{"pedir", "present indicative", "1sg", "pido"},
		{"pedir", "present indicative", "1pl", "pedimos"},
		{"pedir", "present subjunctive", "1pl", "pidamos"},
		{"jugar", "present indicative", "1sg", "juego"},
		{"jugar", "present indicative", "1pl", "jugamos"},
		{"dormir", "present indicative", "3sg", "duerme"},
		{"dormir", "present indicative", "1pl", "dormimos"},
	}
	for _, tt := range tests {
		table, err := eng.Conjugate(tt.verb)
		if err != nil {
			t.Fatalf("Conjugate(%q): %v", tt.verb, err)
		}
		got := table.Tenses[tt.tense][tt.person]
		if got != tt.want {
			t.Errorf("%s %s %s = %q, want %q", tt.verb, tt.tense, tt.person, got, tt.want)
		}
	}
}

func TestConjugateParticiples(t *testing.T) {
	eng := newTestEngine(t)
	tests := []struct {
		verb  string
		tense string
		want  string
	}{
		{"hablar", "past-participle", "hablado"},
		{"comer", "past-participle", "comido"},
		{"vivir", "past-participle", "vivido"},
		{"hablar", "present-participle", "hablando"},
		{"vivir", "present-participle", "viviendo"},
	}
	for _, tt := range tests {
		table, err := eng.Conjugate(tt.verb)
		if err != nil {
			t.Fatalf("Conjugate(%q): %v", tt.verb, err)
		}
		got := table.Tenses[tt.tense][GenericPerson]
		if got != tt.want {
			t.Errorf("%s %s = %q, want %q", tt.verb, tt.tense, got, tt.want)
		}
	}
}

func TestConjugateVerbNotFound(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Conjugate("volar")
	if err == nil {
		t.Fatal("Conjugate('volar') succeeded, want VerbNotFound")
	}
	if !errors.Is(err, ErrVerbNotFound) {
		t.Errorf("errors.Is(err, ErrVerbNotFound) = false for %v", err)
	}
	var nf *VerbNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("errors.As(*VerbNotFoundError) = false for %v", err)
	}
	if nf.Infinitive != "volar" {
		t.Errorf("Infinitive = %q, want %q", nf.Infinitive, "volar")
	}
}

func TestConjugateIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	first, err := eng.Conjugate("pensar")
	if err != nil {
		t.Fatal(err)
	}
	second, err := eng.Conjugate("pensar")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first.Tenses, second.Tenses) {
		t.Error("two Conjugate calls returned different tables")
	}
}

func TestConjugateTenseCoverage(t *testing.T) {
	eng := newTestEngine(t)
	table, err := eng.Conjugate("hablar")
	if err != nil {
		t.Fatal(err)
	}
	for _, tense := range []string{
		"present indicative",
		"present subjunctive",
		"imperfect subjunctive -ra",
		"imperfect subjunctive -se",
		"future",
		"conditional",
		"past-participle",
		"present-participle",
	} {
		if _, ok := table.Tenses[tense]; !ok {
			t.Errorf("hablar table missing tense %q", tense)
		}
	}
}

func TestInfinitives(t *testing.T) {
	eng := newTestEngine(t)
	infs := eng.Infinitives()
	if len(infs) != eng.VerbCount() {
		t.Fatalf("Infinitives() returned %d entries, want %d", len(infs), eng.VerbCount())
	}
	for i := 1; i < len(infs); i++ {
		if infs[i-1] >= infs[i] {
			t.Fatalf("Infinitives() not sorted at %d: %q >= %q", i, infs[i-1], infs[i])
		}
	}
}

func TestPersonOrder(t *testing.T) {
	persons := []string{"form", "3pl", "1sg", "archaic-2sg", "2sg"}
	SortPersons(persons)
	want := []string{"1sg", "2sg", "3pl", "form", "archaic-2sg"}
	if !reflect.DeepEqual(persons, want) {
		t.Errorf("SortPersons = %v, want %v", persons, want)
	}
	if PersonRank("1sg") != 0 {
		t.Errorf("PersonRank('1sg') = %d, want 0", PersonRank("1sg"))
	}
	if PersonRank("nope") <= PersonRank(GenericPerson) {
		t.Error("unrecognized label should rank after all conventional ones")
	}
}
