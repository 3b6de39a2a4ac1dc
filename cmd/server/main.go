// Command server exposes the morpheus conjugation engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/conjugate?verb=<infinitive>
//	GET /api/verbs
//	GET /api/patterns
//	GET /api/stats
package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/cors"

	morpheus "github.com/cours-d-espagnol/morpheus"
)

// config is read from the environment; every field has a default so the
// server starts with no configuration at all.
type config struct {
	Addr           string `env:"MORPHEUS_ADDR" env-default:":8080"`
	GrammarPath    string `env:"MORPHEUS_GRAMMAR" env-default:"data/es.morphology"`
	LexiconPath    string `env:"MORPHEUS_LEXICON" env-default:"data/es.lexicon"`
	AllowedOrigins string `env:"MORPHEUS_CORS_ORIGINS" env-default:"*"`
}

// ---- JSON response types ------------------------------------------------

type verbJSON struct {
	Infinitive string   `json:"infinitive"`
	Properties []string `json:"properties,omitempty"`
}

type personFormJSON struct {
	Person string `json:"person"`
	Form   string `json:"form"`
}

type conjugateResponse struct {
	Verb   verbJSON                    `json:"verb"`
	Tenses map[string][]personFormJSON `json:"tenses"`
}

type verbsResponse struct {
	Verbs []verbJSON `json:"verbs"`
}

type patternsResponse struct {
	Patterns []string `json:"patterns"`
}

type statsResponse struct {
	Patterns int `json:"patterns"`
	Verbs    int `json:"verbs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toVerbJSON(v *morpheus.Verb) verbJSON {
	return verbJSON{Infinitive: v.Infinitive, Properties: v.Properties}
}

// toTensesJSON flattens a table into person-ordered form lists.
func toTensesJSON(t *morpheus.ConjugationTable) map[string][]personFormJSON {
	out := make(map[string][]personFormJSON, len(t.Tenses))
	for tense, forms := range t.Tenses {
		persons := make([]string, 0, len(forms))
		for p := range forms {
			persons = append(persons, p)
		}
		morpheus.SortPersons(persons)

		fj := make([]personFormJSON, 0, len(persons))
		for _, p := range persons {
			fj = append(fj, personFormJSON{Person: p, Form: forms[p]})
		}
		out[tense] = fj
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleConjugate(eng *morpheus.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		verb := r.URL.Query().Get("verb")
		if verb == "" {
			writeError(w, http.StatusBadRequest, "missing 'verb' query parameter")
			return
		}

		table, err := eng.Conjugate(verb)
		if err != nil {
			if errors.Is(err, morpheus.ErrVerbNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, conjugateResponse{
			Verb:   toVerbJSON(table.Verb),
			Tenses: toTensesJSON(table),
		})
	}
}

func handleVerbs(eng *morpheus.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		infs := eng.Infinitives()
		out := make([]verbJSON, 0, len(infs))
		for _, inf := range infs {
			out = append(out, toVerbJSON(eng.Verb(inf)))
		}
		writeJSON(w, http.StatusOK, verbsResponse{Verbs: out})
	}
}

func handlePatterns(eng *morpheus.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		names := make([]string, 0, eng.PatternCount())
		for _, p := range eng.Grammar().Patterns {
			names = append(names, p.Name)
		}
		writeJSON(w, http.StatusOK, patternsResponse{Patterns: names})
	}
}

func handleStats(eng *morpheus.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, statsResponse{
			Patterns: eng.PatternCount(),
			Verbs:    eng.VerbCount(),
		})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Printf("loading %s and %s …", cfg.GrammarPath, cfg.LexiconPath)
	eng, err := morpheus.New(cfg.GrammarPath, cfg.LexiconPath)
	if err != nil {
		log.Fatalf("failed to load data: %v", err)
	}
	log.Printf("loaded %d patterns, %d verbs", eng.PatternCount(), eng.VerbCount())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/conjugate", handleConjugate(eng))
	mux.HandleFunc("/api/verbs", handleVerbs(eng))
	mux.HandleFunc("/api/patterns", handlePatterns(eng))
	mux.HandleFunc("/api/stats", handleStats(eng))

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods: []string{http.MethodGet},
	})

	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, c.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
