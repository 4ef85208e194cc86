package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/jsona/pkgs/dom"
	jsonaerrors "github.com/aledsdavies/jsona/pkgs/errors"
	"github.com/aledsdavies/jsona/pkgs/parser"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse a document and report syntax and semantic errors",
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
			for _, e := range p.Errors {
				fmt.Fprintln(os.Stderr, jsonaerrors.Diagnostic(src, e.Message, int(e.Range.Start)))
			}

			node := dom.Build(p.IntoSyntax())
			domErrs := dom.Validate(node)
			for _, e := range domErrs {
				fmt.Fprintln(os.Stderr, jsonaerrors.Diagnostic(src, e.Message, int(e.Range.Start)))
			}

			if len(p.Errors) == 0 && len(domErrs) == 0 {
				fmt.Println("ok")
				return nil
			}
			os.Exit(exitInvalid)
			return nil
		},
	}
}
