package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/comb/expr"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Print the expression grammar in EBNF",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !check {
				fmt.Fprint(cmd.OutOrStdout(), expr.Grammar)
				return nil
			}

			grammar, err := ebnf.Parse("expr.ebnf", strings.NewReader(expr.Grammar))
			if err != nil {
				printErrors(err)
				return err
			}
			if err := ebnf.Verify(grammar, expr.GrammarStart); err != nil {
				printErrors(err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")

	return cmd
}

// ebnf reports multiple problems as an error slice; unpack it so each
// problem ends up on its own line.
func printErrors(err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Println(v.Index(i).Interface())
		}
	} else {
		fmt.Println(err)
	}
}
