package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/taxonomy"
)

var (
	listSkillsWord string
	listSkillsJSON bool
)

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List the reference skill taxonomy",
	Long:  "Prints every reference term in sorted order, or only the terms containing --word.",
	RunE:  runListSkills,
}

func init() {
	listSkillsCmd.Flags().StringVarP(&listSkillsWord, "word", "w", "", "Only terms containing this word (case-insensitive)")
	listSkillsCmd.Flags().BoolVar(&listSkillsJSON, "json", false, "Print a JSON array instead of one term per line")

	rootCmd.AddCommand(listSkillsCmd)
}

func runListSkills(cmd *cobra.Command, _ []string) error {
	tx := taxonomy.Default()
	terms := tx.All()
	if listSkillsWord != "" {
		terms = tx.TermsContaining(listSkillsWord)
	}
	if terms == nil {
		terms = []string{}
	}

	if listSkillsJSON {
		return writeJSON("", terms)
	}
	for _, term := range terms {
		fmt.Fprintln(cmd.OutOrStdout(), term)
	}
	return nil
}
