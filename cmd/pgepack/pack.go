package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/pge"
	"github.com/gogpu/pge/respack"
)

var (
	flagOutput   string
	flagManifest string
)

var packCmd = &cobra.Command{
	Use:   "pack [files...]",
	Short: "Pack files into a resource pack",
	Long: `Packs the given files, or the files listed in a YAML manifest, into a
single resource pack. Entries are named by their slash-separated path.

Manifest format:
  key: secret
  output: assets.dat
  files:
    - gfx/*.png
    - sfx/jump.wav

Manifest paths are relative to the manifest file. --key and --output
override the manifest values.`,
	RunE: runPack,
}

func init() {
	packCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output pack file")
	packCmd.Flags().StringVarP(&flagManifest, "manifest", "m", "", "YAML manifest listing the files to pack")
}

func runPack(cmd *cobra.Command, args []string) error {
	p, output, err := buildPack(args)
	if err != nil {
		return err
	}
	if err := p.Save(output); err != nil {
		return err
	}

	var total int64
	for _, e := range p.Entries() {
		total += e.Size
	}
	pge.Logger().Info("pack written", "file", output, "entries", p.Len(), "bytes", total)
	return nil
}

// buildPack collects the pack contents from the manifest or the file args.
func buildPack(args []string) (*respack.Pack, string, error) {
	if flagManifest != "" {
		if len(args) > 0 {
			return nil, "", fmt.Errorf("pack: files and --manifest are mutually exclusive")
		}
		m, err := respack.LoadManifest(flagManifest)
		if err != nil {
			return nil, "", err
		}
		if flagKey != "" {
			m.Key = flagKey
		}
		output := m.Output
		if flagOutput != "" {
			output = flagOutput
		} else if output != "" {
			output = filepath.Join(filepath.Dir(flagManifest), output)
		}
		if output == "" {
			return nil, "", fmt.Errorf("pack: no output file (set --output or the manifest output)")
		}
		p, err := m.Build(filepath.Dir(flagManifest))
		if err != nil {
			return nil, "", err
		}
		return p, output, nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("pack: no input files")
	}
	if flagOutput == "" {
		return nil, "", fmt.Errorf("pack: --output is required")
	}
	p, err := respack.New(flagKey)
	if err != nil {
		return nil, "", err
	}
	for _, path := range args {
		if err := p.AddFile(path); err != nil {
			return nil, "", err
		}
		pge.Logger().Debug("added", "file", path)
	}
	return p, flagOutput, nil
}
