package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/jsona/pkgs/dom"
	jsonaerrors "github.com/aledsdavies/jsona/pkgs/errors"
	"github.com/aledsdavies/jsona/pkgs/parser"
	"github.com/aledsdavies/jsona/pkgs/serde"
)

func newConvertCmd() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a document to JSON, YAML, or CBOR (annotations are dropped)",
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
			if len(p.Errors) > 0 {
				os.Exit(exitInvalid)
			}

			node := dom.Build(p.IntoSyntax())

			var out []byte
			switch to {
			case "json":
				out, err = serde.ToJSON(node)
			case "yaml":
				out, err = serde.ToYAML(node)
			case "cbor":
				out, err = serde.ToCBOR(node)
			default:
				fail("convert", fmt.Errorf("unsupported target %q (use json, yaml, or cbor)", to), exitUsage)
			}
			if err != nil {
				fail("convert", err, exitInvalid)
			}
			os.Stdout.Write(out)
			if to != "cbor" && len(out) > 0 && out[len(out)-1] != '\n' {
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "json", "Target format: json, yaml, or cbor")
	return cmd
}
