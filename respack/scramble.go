package respack

import "io"

// Scramble XORs data with a repeating key: out[i] = data[i] ^ key[i%len(key)].
// Applying it twice with the same key returns the original bytes. It
// obfuscates, it does not encrypt.
//
// Returns ErrEmptyKey if key is empty.
func Scramble(data []byte, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	out := make([]byte, len(data))
	xorKey(out, data, key, 0)
	return out, nil
}

// xorKey writes src ^ key into dst, with src[0] at key position pos.
// It returns the key position after the last byte.
func xorKey(dst, src []byte, key string, pos int) int {
	for i, b := range src {
		dst[i] = b ^ key[pos]
		pos++
		if pos == len(key) {
			pos = 0
		}
	}
	return pos
}

// scrambleWriter scrambles everything written through it as one stream.
type scrambleWriter struct {
	w   io.Writer
	key string
	pos int
	buf []byte
}

func newScrambleWriter(w io.Writer, key string) *scrambleWriter {
	return &scrambleWriter{w: w, key: key}
}

func (s *scrambleWriter) Write(p []byte) (int, error) {
	if cap(s.buf) < len(p) {
		s.buf = make([]byte, len(p))
	}
	buf := s.buf[:len(p)]
	xorKey(buf, p, s.key, s.pos)
	n, err := s.w.Write(buf)
	s.pos = (s.pos + n) % len(s.key)
	return n, err
}

// scrambleReader unscrambles everything read through it as one stream.
type scrambleReader struct {
	r   io.Reader
	key string
	pos int
}

func newScrambleReader(r io.Reader, key string) *scrambleReader {
	return &scrambleReader{r: r, key: key}
}

func (s *scrambleReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	s.pos = xorKey(p[:n], p[:n], s.key, s.pos)
	return n, err
}
