package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fastboardai/linkgraph/format"

	// Register payload formats
	_ "github.com/fastboardai/linkgraph/format/voyager"
	_ "github.com/fastboardai/linkgraph/format/voyagersearch"
)

var (
	inputFile  string
	outputFile string
	publicID   string
	pretty     bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Materialize a profile record from a payload",
	Long: `Materialize a fully nested profile record from a normalized
profile payload.

Input defaults to stdin, output defaults to stdout.

Examples:
  # stdin to stdout
  cat payload.json | linkgraph convert

  # Explicit files
  linkgraph convert -i payload.json -o profile.json

  # Disambiguate a payload carrying several profile entities
  linkgraph convert -i payload.json --public-id jdoe`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVar(&publicID, "public-id", "", "Public identifier of the target profile")
	convertCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
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

	parser, err := format.GetProfileParser("voyager")
	if err != nil {
		return err
	}

	opts := &format.ParseOptions{
		PublicIdentifier: publicID,
		SourceName:       inputName,
	}

	prof, err := parser.ParseProfile(input, opts)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inputName, err)
	}

	return writeJSON(output, prof)
}

func openInput() (io.Reader, string, func() error, error) {
	if inputFile == "" {
		return os.Stdin, "stdin", func() error { return nil }, nil
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, inputFile, f.Close, nil
}

func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
