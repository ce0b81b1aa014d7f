package respack

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists the files that make up a pack.
//
//	key: secret
//	output: assets.dat
//	files:
//	  - gfx/tiles.png
//	  - sfx/*.wav
//
// File entries are slash-separated and relative to the manifest directory;
// entries containing glob metacharacters are expanded with path.Match rules.
type Manifest struct {
	Key    string   `yaml:"key"`
	Output string   `yaml:"output"`
	Files  []string `yaml:"files"`
}

// LoadManifest reads and validates the YAML manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("respack: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("respack: parse manifest %s: %w", path, err)
	}
	if m.Key == "" {
		return nil, fmt.Errorf("respack: manifest %s: %w", path, ErrEmptyKey)
	}
	return &m, nil
}

// Build creates a pack holding every manifest file, resolved against baseDir.
// Entries are named by their manifest path.
func (m *Manifest) Build(baseDir string) (*Pack, error) {
	p, err := New(m.Key)
	if err != nil {
		return nil, err
	}
	for _, f := range m.Files {
		names, err := expandPattern(baseDir, f)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			if err := p.AddFileAs(name, filepath.Join(baseDir, filepath.FromSlash(name))); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// expandPattern resolves one manifest entry to slash-separated entry names.
func expandPattern(baseDir, pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("respack: manifest pattern %q: %w", pattern, err)
	}
	matches, err := filepath.Glob(filepath.Join(baseDir, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("respack: manifest pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		// Plain names that do not exist surface the read error in AddFileAs.
		return []string{pattern}, nil
	}
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(baseDir, match)
		if err != nil {
			return nil, fmt.Errorf("respack: manifest entry %s: %w", match, err)
		}
		info, err := os.Stat(match)
		if err != nil {
			return nil, fmt.Errorf("respack: manifest entry %s: %w", match, err)
		}
		if info.IsDir() {
			continue
		}
		names = append(names, filepath.ToSlash(rel))
	}
	return names, nil
}
