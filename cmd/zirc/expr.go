package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zirc/internal/diagfmt"
	"zirc/internal/driver"
)

var exprCmd = &cobra.Command{
	Use:   "expr [flags] <expression>",
	Short: "Parse an expression given on the command line",
	Long:  `Expr parses a single expression from its arguments and prints the serialized syntax tree`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExpr,
}

func init() {
	exprCmd.Flags().Bool("diagnostics-json", false, "print diagnostics as JSON instead of pretty text")
}

func runExpr(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	result, err := driver.ParseSource("", []byte(input), maxDiagnostics(cmd))
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		asJSON, _ := cmd.Flags().GetBool("diagnostics-json")
		if asJSON {
			if err := diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
	}
	if result.Bag.HasErrors() || !result.Expr.IsValid() {
		return fmt.Errorf("expression failed to parse")
	}

	return diagfmt.WriteExpr(os.Stdout, result.Builder, result.FileSet, result.Expr)
}
