package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	jsonaerrors "github.com/aledsdavies/jsona/pkgs/errors"
	"github.com/aledsdavies/jsona/pkgs/parser"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and report syntax errors",
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
			if len(p.Errors) == 0 {
				fmt.Println("ok")
				return nil
			}
			for _, e := range p.Errors {
				fmt.Fprintln(os.Stderr, jsonaerrors.Diagnostic(src, e.Message, int(e.Range.Start)))
			}
			os.Exit(exitInvalid)
			return nil
		},
	}
}
