package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print lexicon and grammar statistics",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	rootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	eng, err := loadEngine()
	if err != nil {
		return err
	}

	var regularAr, regularEr, regularIr, stemChanging int
	for _, inf := range eng.Infinitives() {
		v := eng.Verb(inf)
		changing := false
		for _, p := range v.Properties {
			if strings.Contains(p, "stem-change") {
				changing = true
				break
			}
		}
		if changing {
			stemChanging++
			continue
		}
		switch {
		case strings.HasSuffix(inf, "ar"):
			regularAr++
		case strings.HasSuffix(inf, "er"):
			regularEr++
		case strings.HasSuffix(inf, "ir"):
			regularIr++
		}
	}

	fmt.Printf("Patterns:            %d\n", eng.PatternCount())
	fmt.Printf("Regular -ar verbs:   %d\n", regularAr)
	fmt.Printf("Regular -er verbs:   %d\n", regularEr)
	fmt.Printf("Regular -ir verbs:   %d\n", regularIr)
	fmt.Printf("Stem-changing verbs: %d\n", stemChanging)
	fmt.Printf("Total verbs:         %d\n", eng.VerbCount())
	return nil
}
