package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/pge"
	"github.com/gogpu/pge/respack"
)

var flagDir string

var extractCmd = &cobra.Command{
	Use:   "extract <pack> [names...]",
	Short: "Extract entries from a resource pack",
	Long: `Writes pack entries below the target directory, recreating their paths.
With no names every entry is extracted. Entries whose names would escape
the target directory are refused.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&flagDir, "dir", "d", ".", "Target directory")
}

func runExtract(cmd *cobra.Command, args []string) error {
	p, err := respack.Open(args[0], flagKey)
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		for _, e := range p.Entries() {
			names = append(names, e.Name)
		}
	}

	for _, name := range names {
		if err := extractEntry(p, name, flagDir); err != nil {
			return err
		}
	}
	pge.Logger().Info("extracted", "entries", len(names), "dir", flagDir)
	return nil
}

// extractEntry writes the entry called name below dir.
func extractEntry(p *respack.Pack, name, dir string) error {
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("extract: refusing entry %q outside the target directory", name)
	}
	data, err := p.Bytes(name)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	pge.Logger().Debug("wrote", "entry", name, "path", path, "bytes", len(data))
	return nil
}
