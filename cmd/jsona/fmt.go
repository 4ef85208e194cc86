package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/jsona/pkgs/format"
	"github.com/aledsdavies/jsona/pkgs/parser"
)

func newFmtCmd() *cobra.Command {
	var indent string
	var noTrailingNewline bool
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat a document's whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readInput(path)
			if err != nil {
				fail("read", err, exitIOError)
			}

			p := parser.Parse(src)
			if len(p.Errors) > 0 {
				fmt.Fprintln(os.Stderr, "jsona: fmt: refusing to format a document with syntax errors")
				os.Exit(exitInvalid)
			}

			out := format.Format(p.IntoSyntax(), format.Options{
				IndentString:    indent,
				TrailingNewline: !noTrailingNewline,
			})

			if write && path != "" && path != "-" {
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					fail("write", err, exitIOError)
				}
				return nil
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&indent, "indent", "  ", "Indent string for multiline containers")
	cmd.Flags().BoolVar(&noTrailingNewline, "no-trailing-newline", false, "Omit the trailing newline")
	cmd.Flags().BoolVar(&write, "write", false, "Write the result back to the input file instead of stdout")
	return cmd
}
