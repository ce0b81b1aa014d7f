// Package respack bundles named byte blobs into a single resource file.
//
// A pack file starts with an index (entry count, then one record per entry
// holding its name, id, size and absolute file offset) followed by the raw
// payloads back to back. The index is obfuscated with a repeating-key XOR
// (see Scramble); the payloads are stored as is.
//
// # Usage
//
//	p, err := respack.New("secret")
//	if err != nil {
//	    return err
//	}
//	if err := p.AddFile("gfx/tiles.png"); err != nil {
//	    return err
//	}
//	if err := p.Save("assets.dat"); err != nil {
//	    return err
//	}
//
//	q, err := respack.Open("assets.dat", "secret")
//	data, err := q.Bytes("gfx/tiles.png")
//
// A Pack is not safe for concurrent use.
package respack

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Errors returned by Pack operations.
var (
	// ErrEmptyKey is returned when a pack or Scramble is given an empty key.
	ErrEmptyKey = errors.New("respack: empty key")

	// ErrEmptyName is returned when an entry is added without a name.
	ErrEmptyName = errors.New("respack: empty entry name")

	// ErrNotFound is returned when no entry has the requested name.
	ErrNotFound = errors.New("respack: entry not found")

	// ErrCorrupt is returned when a pack file index is malformed or truncated.
	ErrCorrupt = errors.New("respack: corrupt pack file")
)

// Entry describes one payload in a pack.
// ID and Offset are assigned when the pack is saved or loaded; entries added
// since then report zero for both.
type Entry struct {
	Name   string
	ID     uint32
	Size   int64
	Offset int64
}

type entry struct {
	Entry
	data []byte
}

// Pack is an in-memory set of named payloads that can be saved to and
// loaded from a pack file.
type Pack struct {
	key     string
	entries map[string]*entry
}

// New creates an empty pack that scrambles its index with key.
// Returns ErrEmptyKey if key is empty.
func New(key string) (*Pack, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &Pack{
		key:     key,
		entries: make(map[string]*entry),
	}, nil
}

// Open loads the pack file at path using key.
func Open(path, key string) (*Pack, error) {
	p, err := New(key)
	if err != nil {
		return nil, err
	}
	if err := p.Load(path); err != nil {
		return nil, err
	}
	return p, nil
}

// AddFile reads the file at path and stores it under its slash-separated path.
func (p *Pack) AddFile(path string) error {
	return p.AddFileAs(filepath.ToSlash(path), path)
}

// AddFileAs reads the file at path and stores it under name.
func (p *Pack) AddFileAs(name, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("respack: add %s: %w", name, err)
	}
	return p.AddBytes(name, data)
}

// AddBytes stores data under name, replacing any entry with that name.
// The pack keeps data; the caller must not modify it afterwards.
func (p *Pack) AddBytes(name string, data []byte) error {
	if name == "" {
		return ErrEmptyName
	}
	p.entries[name] = &entry{
		Entry: Entry{Name: name, Size: int64(len(data))},
		data:  data,
	}
	return nil
}

// Remove deletes the entry called name. It reports whether one existed.
func (p *Pack) Remove(name string) bool {
	if _, ok := p.entries[name]; !ok {
		return false
	}
	delete(p.entries, name)
	return true
}

// Has reports whether the pack holds an entry called name.
func (p *Pack) Has(name string) bool {
	_, ok := p.entries[name]
	return ok
}

// Len returns the number of entries.
func (p *Pack) Len() int {
	return len(p.entries)
}

// Bytes returns the payload called name. The slice is owned by the pack;
// copy it to keep it beyond the pack's lifetime.
// Returns ErrNotFound if there is no such entry.
func (p *Pack) Bytes(name string) ([]byte, error) {
	e, ok := p.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e.data, nil
}

// Reader returns a reader over the payload called name.
func (p *Pack) Reader(name string) (*bytes.Reader, error) {
	data, err := p.Bytes(name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// Entries returns the entry descriptions ordered by name, which is also
// the order Save writes them in.
func (p *Pack) Entries() []Entry {
	out := make([]Entry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e.Entry)
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// sorted returns the entries in deterministic write order.
func (p *Pack) sorted() []*entry {
	out := make([]*entry, 0, len(p.entries))
	for _, e := range p.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}
