// Command jsona is a small CLI over the parser, DOM, and format
// packages: parse a document and report syntax errors, validate its DOM
// and report semantic ones, reformat it, or convert it to JSON/YAML/
// CBOR. Grounded on the teacher's cmd/devcmd, which read a file, parsed
// it, and printed either a result or an error to stderr with a distinct
// exit code per failure stage — generalized here to cobra subcommands
// instead of one flag-parsed binary per output format.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	exitSuccess = 0
	exitUsage   = 1
	exitIOError = 2
	exitInvalid = 3
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUsage)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsona",
		Short: "Parse, validate, format, and convert JSONA documents",
	}
	cmd.AddCommand(newParseCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newFmtCmd())
	cmd.AddCommand(newConvertCmd())
	return cmd
}

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func fail(stage string, err error, code int) {
	fmt.Fprintf(os.Stderr, "jsona: %s: %v\n", stage, err)
	os.Exit(code)
}
