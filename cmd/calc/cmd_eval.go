package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/comb/expr"
)

func newEvalCmd() *cobra.Command {
	var defines []string

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Parse and evaluate an arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			vars, err := parseDefines(defines)
			if err != nil {
				return err
			}

			tree, pos, ok := expr.Parse(input)
			if !ok {
				return fmt.Errorf("parse %q: no expression recognized", input)
			}
			if pos < len(input) {
				log.Warningf("ignoring trailing input at offset %d: %q", pos, input[pos:])
			}
			log.Debugf("evaluating %s with variables %v", tree, expr.Vars(tree))

			value, err := expr.Eval(tree, vars)
			if err != nil {
				return fmt.Errorf("evaluate %s: %w", tree, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "variable binding name=value (repeatable)")

	return cmd
}

func parseDefines(defines []string) (map[string]int64, error) {
	if len(defines) == 0 {
		return nil, nil
	}
	vars := make(map[string]int64, len(defines))
	for _, d := range defines {
		name, text, found := strings.Cut(d, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("malformed definition %q, want name=value", d)
		}
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("definition %q: %w", d, err)
		}
		vars[name] = value
	}
	return vars, nil
}
