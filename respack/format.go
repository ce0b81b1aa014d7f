package respack

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/pge"
)

// Index record layout, all little-endian:
//
//	[int32 entryCount]
//	entryCount x [int32 nameLen][name][uint32 id][int64 size][int64 offset]
const (
	countSize     = 4
	recordFixSize = 4 + 4 + 8 + 8

	// maxNameLen bounds a single entry name read from disk.
	maxNameLen = 1 << 16
)

// indexSize returns the size in bytes of the index for entries.
func indexSize(entries []*entry) int64 {
	n := int64(countSize)
	for _, e := range entries {
		n += recordFixSize + int64(len(e.Name))
	}
	return n
}

// encodeIndex serializes the index for entries using ids and offsets.
func encodeIndex(entries []*entry, ids []uint32, offsets []int64) []byte {
	buf := make([]byte, 0, indexSize(entries))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(entries)))
	for i, e := range entries {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(e.Name)))
		buf = append(buf, e.Name...)
		buf = binary.LittleEndian.AppendUint32(buf, ids[i])
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.Size))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(offsets[i]))
	}
	return buf
}

// Save writes the pack to path.
//
// The file is built next to path under a temporary name: the index is written
// with placeholder offsets, the payloads follow in name order while their
// offsets are recorded, and the index is then rewritten in place with the real
// offsets. Only a complete file is renamed over path; on error path is left
// untouched.
func (p *Pack) Save(path string) (err error) {
	entries := p.sorted()
	ids := make([]uint32, len(entries))
	offsets := make([]int64, len(entries))
	for i := range entries {
		ids[i] = uint32(i)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("respack: create temporary file: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			pge.Logger().Warn("respack: temporary file not removed", "path", tmp.Name(), "error", rmErr)
		}
	}()

	w := bufio.NewWriter(tmp)
	placeholder := encodeIndex(entries, ids, offsets)
	if _, err := newScrambleWriter(w, p.key).Write(placeholder); err != nil {
		return fmt.Errorf("respack: write index: %w", err)
	}

	cursor := int64(len(placeholder))
	for i, e := range entries {
		offsets[i] = cursor
		if _, err := w.Write(e.data); err != nil {
			return fmt.Errorf("respack: write %s: %w", e.Name, err)
		}
		cursor += e.Size
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("respack: write data: %w", err)
	}

	index := encodeIndex(entries, ids, offsets)
	if len(index) != len(placeholder) {
		return fmt.Errorf("respack: index size changed from %d to %d bytes", len(placeholder), len(index))
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("respack: rewind: %w", err)
	}
	if _, err := newScrambleWriter(tmp, p.key).Write(index); err != nil {
		return fmt.Errorf("respack: patch index: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("respack: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("respack: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("respack: rename: %w", err)
	}

	for i, e := range entries {
		e.ID = ids[i]
		e.Offset = offsets[i]
	}

	pge.Logger().Info("respack: saved", "path", path, "entries", len(entries),
		"index", len(index), "bytes", cursor)
	return nil
}

// Load replaces the pack contents with the pack file at path.
//
// The index is read and validated first; payloads are then read at their
// recorded offsets. A malformed or truncated file returns an error wrapping
// ErrCorrupt, and the pack is left unchanged on any error.
func (p *Pack) Load(path string) error {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("respack: open: %w", err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("respack: stat: %w", err)
	}

	entries, indexEnd, err := readIndex(bufio.NewReader(f), p.key)
	if err != nil {
		return err
	}
	if err := validateLayout(entries, indexEnd, st.Size()); err != nil {
		return err
	}

	loaded := make(map[string]*entry, len(entries))
	for _, e := range entries {
		e.data = make([]byte, e.Size)
		if _, err := f.ReadAt(e.data, e.Offset); err != nil {
			return fmt.Errorf("%w: read %s: %w", ErrCorrupt, e.Name, err)
		}
		loaded[e.Name] = e
	}

	p.entries = loaded
	pge.Logger().Debug("respack: loaded", "path", path, "entries", len(entries), "index", indexEnd)
	return nil
}

// readIndex decodes the scrambled index from r. It returns the entries and
// the number of index bytes consumed.
func readIndex(r io.Reader, key string) ([]*entry, int64, error) {
	sr := newScrambleReader(r, key)

	var count int32
	if err := binary.Read(sr, binary.LittleEndian, &count); err != nil {
		return nil, 0, fmt.Errorf("%w: entry count: %w", ErrCorrupt, eofAsUnexpected(err))
	}
	if count < 0 {
		return nil, 0, fmt.Errorf("%w: negative entry count %d", ErrCorrupt, count)
	}

	pos := int64(countSize)
	entries := make([]*entry, 0, min(int(count), 1024))
	seen := make(map[string]bool, min(int(count), 1024))
	for i := range int(count) {
		var nameLen int32
		if err := binary.Read(sr, binary.LittleEndian, &nameLen); err != nil {
			return nil, 0, fmt.Errorf("%w: entry %d: %w", ErrCorrupt, i, eofAsUnexpected(err))
		}
		if nameLen <= 0 || nameLen > maxNameLen {
			return nil, 0, fmt.Errorf("%w: entry %d: name length %d", ErrCorrupt, i, nameLen)
		}

		name := make([]byte, nameLen)
		if _, err := io.ReadFull(sr, name); err != nil {
			return nil, 0, fmt.Errorf("%w: entry %d: %w", ErrCorrupt, i, eofAsUnexpected(err))
		}

		var rec struct {
			ID     uint32
			Size   int64
			Offset int64
		}
		if err := binary.Read(sr, binary.LittleEndian, &rec); err != nil {
			return nil, 0, fmt.Errorf("%w: entry %d: %w", ErrCorrupt, i, eofAsUnexpected(err))
		}

		if seen[string(name)] {
			return nil, 0, fmt.Errorf("%w: duplicate entry %q", ErrCorrupt, name)
		}
		seen[string(name)] = true

		entries = append(entries, &entry{Entry: Entry{
			Name:   string(name),
			ID:     rec.ID,
			Size:   rec.Size,
			Offset: rec.Offset,
		}})
		pos += recordFixSize + int64(nameLen)
	}
	return entries, pos, nil
}

// validateLayout checks that every payload lies inside the data region.
func validateLayout(entries []*entry, indexEnd, fileSize int64) error {
	for _, e := range entries {
		if e.Size < 0 {
			return fmt.Errorf("%w: %s: negative size %d", ErrCorrupt, e.Name, e.Size)
		}
		if e.Offset < indexEnd {
			return fmt.Errorf("%w: %s: offset %d overlaps index ending at %d", ErrCorrupt, e.Name, e.Offset, indexEnd)
		}
		if e.Offset > fileSize || e.Size > fileSize-e.Offset {
			return fmt.Errorf("%w: %s: %d bytes at %d past end of file (%d)", ErrCorrupt, e.Name, e.Size, e.Offset, fileSize)
		}
	}
	return nil
}

// eofAsUnexpected reports a clean EOF inside the index as truncation.
func eofAsUnexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
