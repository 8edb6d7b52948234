package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastboardai/linkgraph/search"
)

var (
	targetsFile string
	queryRole   string
	queryLoc    string
	queryUni    bool
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Print discovery search queries for configured targets",
	Long: `Print the site-restricted search query strings for a set of
discovery targets, either from a targets YAML file or from flags.

Examples:
  linkgraph queries --targets targets.yaml
  linkgraph queries --role "Junior Software Engineer" --location Sydney --filter-uni`,
	Args: cobra.NoArgs,
	RunE: runQueries,
}

func init() {
	queriesCmd.Flags().StringVar(&targetsFile, "targets", "", "Targets YAML file")
	queriesCmd.Flags().StringVar(&queryRole, "role", "", "Role to search for")
	queriesCmd.Flags().StringVar(&queryLoc, "location", "Sydney", "Location to search in")
	queriesCmd.Flags().BoolVar(&queryUni, "filter-uni", false, "Narrow by university list")
}

func runQueries(cmd *cobra.Command, args []string) error {
	builder, err := search.NewBuilder()
	if err != nil {
		return err
	}

	var targets []search.Target
	switch {
	case targetsFile != "":
		targets, err = search.LoadTargets(targetsFile)
		if err != nil {
			return err
		}
	case queryRole != "":
		targets = []search.Target{{
			Role:        queryRole,
			Location:    queryLoc,
			FilterByUni: queryUni,
		}}
	default:
		return fmt.Errorf("either --targets or --role is required")
	}

	for _, q := range builder.Queries(targets) {
		fmt.Fprintln(cmd.OutOrStdout(), q)
	}
	return nil
}
