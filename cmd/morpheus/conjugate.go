package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	morpheus "github.com/cours-d-espagnol/morpheus"
)

func init() {
	cmd := &cobra.Command{
		Use:     "conjugate INFINITIVE...",
		Short:   "Print the full conjugation table for one or more verbs",
		Example: `  morpheus conjugate hablar pensar`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runConjugate,
	}
	rootCmd.AddCommand(cmd)
}

func runConjugate(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}

	for _, infinitive := range args {
		table, err := eng.Conjugate(infinitive)
		if err != nil {
			return err
		}
		printTable(infinitive, table)
	}
	return nil
}

func printTable(infinitive string, table *morpheus.ConjugationTable) {
	header := strings.ToUpper(infinitive)
	if props := table.Verb.Properties; len(props) > 0 {
		header += " (" + strings.Join(props, ", ") + ")"
	}
	fmt.Println(header)

	tenses := make([]string, 0, len(table.Tenses))
	for t := range table.Tenses {
		tenses = append(tenses, t)
	}
	sort.Strings(tenses)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, tense := range tenses {
		forms := table.Tenses[tense]
		persons := make([]string, 0, len(forms))
		for p := range forms {
			persons = append(persons, p)
		}
		morpheus.SortPersons(persons)

		fmt.Fprintf(w, "\n%s\n", tense)
		for _, p := range persons {
			fmt.Fprintf(w, "  %s\t%s\n", p, forms[p])
		}
	}
	w.Flush()
	fmt.Println()
}
