package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/roles"
)

var (
	listRolesJSON     bool
	listRolesKeywords bool
)

var listRolesCmd = &cobra.Command{
	Use:   "list-roles",
	Short: "List the energy-sector role categories in match order",
	Long: "Prints the role table in the order titles are matched against it. " +
		"--keywords adds the case-insensitive keyword patterns of each role.",
	RunE: runListRoles,
}

func init() {
	listRolesCmd.Flags().BoolVar(&listRolesJSON, "json", false, "Print JSON instead of a table")
	listRolesCmd.Flags().BoolVar(&listRolesKeywords, "keywords", false, "Include each role's keyword patterns")

	rootCmd.AddCommand(listRolesCmd)
}

// roleEntry is one role with its keyword patterns, for --keywords output.
type roleEntry struct {
	roles.Role
	Keywords []string `json:"keywords"`
}

// roleEntries flattens patterns into roles with their keyword sources.
func roleEntries(patterns []roles.Pattern) []roleEntry {
	out := make([]roleEntry, len(patterns))
	for i, p := range patterns {
		kws := make([]string, len(p.Keywords))
		for j, re := range p.Keywords {
			kws[j] = strings.TrimPrefix(re.String(), "(?i)")
		}
		out[i] = roleEntry{
			Role: roles.Role{
				ID:          p.RoleID,
				Name:        p.RoleName,
				Confidence:  p.Confidence,
				Description: p.Description,
			},
			Keywords: kws,
		}
	}
	return out
}

func runListRoles(_ *cobra.Command, _ []string) error {
	if listRolesKeywords {
		entries := roleEntries(roles.DefaultPatterns())
		if listRolesJSON {
			return writeJSON("", entries)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONFIDENCE\tKEYWORDS")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Confidence, strings.Join(e.Keywords, "  "))
		}
		return w.Flush()
	}

	list := roles.Default().Roles()
	if listRolesJSON {
		return writeJSON("", list)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONFIDENCE")
	for _, r := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.Confidence)
	}
	return w.Flush()
}
