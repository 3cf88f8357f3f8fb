package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/comb/expr"
	"github.com/dhamidi/comb/format"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Parse an arithmetic expression and dump the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			tree, pos, ok := expr.Parse(input)
			if !ok {
				return fmt.Errorf("parse %q: no expression recognized", input)
			}
			log.Debugf("parsed %q up to offset %d", input, pos)
			if pos < len(input) {
				log.Warningf("ignoring trailing input at offset %d: %q", pos, input[pos:])
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "dump":
				encoder = format.NewDumpEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFormat, "format", "json", "output format (json, text, dump)")

	return cmd
}
