package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastboardai/linkgraph/format"
)

var hitsCmd = &cobra.Command{
	Use:   "hits",
	Short: "Extract profile hits from a search payload",
	Long: `Extract deduplicated profile hits from a normalized search
payload.

Input defaults to stdin, output defaults to stdout.

Examples:
  cat search.json | linkgraph hits
  linkgraph hits -i search.json -o hits.json --pretty`,
	Args: cobra.NoArgs,
	RunE: runHits,
}

func init() {
	hitsCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	hitsCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	hitsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runHits(cmd *cobra.Command, args []string) (err error) {
	input, inputName, cleanup, err := openInput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	output, closeOut, err := openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	parser, err := format.GetHitParser("voyager-search")
	if err != nil {
		return err
	}

	hits, err := parser.ParseHits(input)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputName, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Extracted %d hits\n", len(hits))

	return writeJSON(output, hits)
}
