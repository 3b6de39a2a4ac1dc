package main

import (
	"github.com/spf13/cobra"

	morpheus "github.com/cours-d-espagnol/morpheus"
)

var (
	grammarPath string
	lexiconPath string
)

var rootCmd = &cobra.Command{
	Use:   "morpheus",
	Short: "Conjugate verbs from a declarative morphology grammar",
	Long: `morpheus loads a .morphology grammar and a .lexicon of verbs and
produces full conjugation tables.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&grammarPath, "grammar", "data/es.morphology", "path to the morphology grammar")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "data/es.lexicon", "path to the verb lexicon")
}

// loadEngine builds an engine from the configured data files.
func loadEngine() (*morpheus.Engine, error) {
	return morpheus.New(grammarPath, lexiconPath)
}

func Execute() error {
	return rootCmd.Execute()
}
