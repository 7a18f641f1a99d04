package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zirc/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.zc...",
	Short: "Check zirc source files, caching clean results",
	Long:  `Check parses each file and reports diagnostics. Results are cached by content hash, so unchanged files are not reparsed`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-cache", false, "skip the disk cache")
	checkCmd.Flags().Bool("drop-cache", false, "invalidate the disk cache before checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	noCache, _ := cmd.Flags().GetBool("no-cache")
	dropCache, _ := cmd.Flags().GetBool("drop-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	var cache *driver.DiskCache
	if !noCache {
		var err error
		cache, err = driver.OpenDiskCache("zirc")
		if err != nil {
			// Cache trouble only costs reparses.
			fmt.Fprintf(os.Stderr, "warning: disk cache unavailable: %v\n", err)
			cache = nil
		}
	}
	if dropCache && cache != nil {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop cache: %w", err)
		}
	}

	broken := 0
	for _, path := range args {
		res, err := driver.Check(path, cache, maxDiagnostics(cmd))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if res.Diagnostics != "" {
			fmt.Fprint(os.Stderr, res.Diagnostics)
		}
		if res.Broken {
			broken++
			continue
		}
		if !quiet {
			status := "ok"
			if res.FromCache {
				status = "ok (cached)"
			}
			fmt.Fprintf(os.Stdout, "%s: %s\n", path, status)
		}
	}

	if broken > 0 {
		return fmt.Errorf("%d of %d files failed", broken, len(args))
	}
	return nil
}
