package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/skills"
)

var (
	validateSkillsIn  string
	validateSkillsOut string
)

var validateSkillsCmd = &cobra.Command{
	Use:   "validate-skills [skill...]",
	Short: "Keep only strings that look like skills",
	Long:  "Runs the structural skill validator and prints the strings that pass, in input order.",
	RunE:  runValidateSkills,
}

func init() {
	validateSkillsCmd.Flags().StringVarP(&validateSkillsIn, "in", "i", "", "Input file of candidate skills ('-' for stdin)")
	validateSkillsCmd.Flags().StringVarP(&validateSkillsOut, "out", "o", "", "Output JSON file (default stdout)")

	rootCmd.AddCommand(validateSkillsCmd)
}

func runValidateSkills(_ *cobra.Command, args []string) error {
	raw, err := collectSkills(args, validateSkillsIn)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("no skills given: pass them as arguments or with --in")
	}
	return writeJSON(validateSkillsOut, skills.FilterValid(raw))
}
