package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zirc/internal/diagfmt"
	"zirc/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.zc|directory>",
	Short: "Parse a zirc source file or directory",
	Long:  `Parse analyzes a zirc expression file, or every *.zc file under a directory, and prints the serialized syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	st, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if !st.IsDir() {
		return parseOneFile(cmd, filePath)
	}
	return parseDirectory(cmd, filePath)
}

func parseOneFile(cmd *cobra.Command, filePath string) error {
	result, err := driver.Parse(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Bag.HasErrors() || !result.Expr.IsValid() {
		return fmt.Errorf("%s: parse failed", filePath)
	}

	return diagfmt.WriteExpr(os.Stdout, result.Builder, result.FileSet, result.Expr)
}

func parseDirectory(cmd *cobra.Command, dir string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	fileSet, results, err := driver.ParseDir(context.Background(), dir, maxDiagnostics(cmd), jobs)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	broken := 0
	for _, res := range results {
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				ShowNotes: true,
			})
		}
		if res.Bag.HasErrors() || !res.Expr.IsValid() {
			broken++
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s: ", res.Path)
		}
		if err := diagfmt.WriteExpr(os.Stdout, res.Builder, fileSet, res.Expr); err != nil {
			return err
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d files failed to parse", broken, len(results))
	}
	return nil
}
