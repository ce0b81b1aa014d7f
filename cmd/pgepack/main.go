// pgepack bundles game assets into a pge resource pack.
//
// Usage:
//
//	pgepack pack -k <key> -o <file> <files...>   - Pack files
//	pgepack pack --manifest pack.yaml            - Pack files listed in a manifest
//	pgepack list -k <key> <file>                 - List pack entries
//	pgepack extract -k <key> -d <dir> <file>     - Extract every entry
//
// Global flags:
//
//	-k, --key <key>  - Scramble key for the pack index
//	-v, --verbose    - Log debug details to stderr
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/pge"
)

var (
	// Global flags
	flagKey     string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pgepack",
	Short: "Bundle game assets into a pge resource pack",
	Long: `pgepack creates and inspects resource packs: single files holding many
named assets behind a scrambled index.

Examples:
  pgepack pack -k secret -o assets.dat gfx/tiles.png sfx/jump.wav
  pgepack pack --manifest assets.yaml
  pgepack list -k secret assets.dat
  pgepack extract -k secret -d out assets.dat`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagKey, "key", "k", "", "Scramble key for the pack index")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(packCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(extractCmd)
}

// setupLogging routes pge logging through a charm logger on stderr.
func setupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "pgepack",
	})
	pge.SetLogger(slog.New(logger))
}
